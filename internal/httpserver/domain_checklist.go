package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"tesla-buddy/internal/middleware"
	sessionHTTP "tesla-buddy/internal/session/delivery/http"
	sessionUC "tesla-buddy/internal/session/usecase"
)

// setupChecklistDomain initializes the checklist session domain and registers its routes.
func (srv HTTPServer) setupChecklistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase over the shared in-memory repository
	uc := sessionUC.New(srv.repo, srv.source, srv.transformer, srv.checklist, srv.l)

	// 2. HTTP Handler
	h := sessionHTTP.New(srv.l, uc, srv.defaultTheme)

	// 3. Routes: registers /api/v1/checklists
	sessionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Checklist domain registered (default source: %s)", srv.checklist.DefaultSource)
	return nil
}
