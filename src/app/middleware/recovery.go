package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"choicefetch/src/app/http/response"
	"choicefetch/src/infra/logger"
)

// Recovery turns a handler panic into a 500 with the request ID and logs the
// stack. It must be the first middleware in the chain.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				logger.WithRequestID(log, requestID).Error("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				c.Abort()
				response.InternalError(c, requestID)
			}
		}()

		c.Next()
	}
}
