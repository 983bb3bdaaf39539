package loggingMiddleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-social/internal/controllers/middlewares/auth"
	"github.com/gmaschi/go-recipes-social/pkg/auth/tokenAuth"
	"github.com/gmaschi/go-recipes-social/pkg/logger"
	"github.com/google/uuid"
)

const RequestIDHeaderKey = "X-Request-ID"

// RequestLogger writes one structured line per request once the handler chain has run
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		requestID := ctx.GetHeader(RequestIDHeaderKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(RequestIDHeaderKey, requestID)

		ctx.Next()

		status := ctx.Writer.Status()
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(ctx.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		}
		if value, ok := ctx.Get(authMiddleware.AuthorizationPayloadKey); ok {
			if payload, ok := value.(*tokenAuth.Payload); ok {
				fields = append(fields, "username", payload.Username)
			}
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
