package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tesla-buddy/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an ID and logs its outcome.
func (mw Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s %v", c.Request.Method, c.Request.URL.Path, status, latency, c.Errors.ByType(gin.ErrorTypeAny))
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			mw.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
