package middleware

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"tesla-buddy/pkg/response"
)

// Recovery turns panics into 500 responses and reports them to Sentry
// when it is enabled.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			mw.l.Errorf(ctx, "middleware.Recovery: panic: %v", rec)

			if mw.sentryEnabled {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(c.Request)
				hub.RecoverWithContext(ctx, rec)
				hub.Flush(2 * time.Second)
			}

			response.InternalError(c, fmt.Errorf("panic: %v", rec))
			c.Abort()
		}()
		c.Next()
	}
}
