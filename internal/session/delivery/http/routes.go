package http

import (
	"github.com/gin-gonic/gin"

	"tesla-buddy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	checklists := rg.Group("/checklists", mw.RateLimit())
	{
		checklists.POST("", h.Open)
		checklists.GET("/:id", h.Detail)
		checklists.DELETE("/:id", h.Close)
		checklists.GET("/:id/view", h.View)
		checklists.POST("/:id/reload", h.Reload)
		checklists.POST("/:id/toggle", h.Toggle)
		checklists.POST("/:id/links", h.PressLink)
	}
}
