package http

import (
	"github.com/gin-gonic/gin"

	"tesla-buddy/internal/session"
	"tesla-buddy/pkg/log"
	"tesla-buddy/pkg/mdview"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Open(c *gin.Context)
	Detail(c *gin.Context)
	Reload(c *gin.Context)
	Toggle(c *gin.Context)
	PressLink(c *gin.Context)
	View(c *gin.Context)
	Close(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           session.UseCase
	defaultTheme mdview.Theme
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase, defaultTheme mdview.Theme) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		defaultTheme: defaultTheme,
	}
}
