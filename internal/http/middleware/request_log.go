package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/officeorder-backend/internal/platform/ctxutil"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

// RequestLogger writes one line per request once the handler chain ran.
// Paths in quiet (health probes) are logged at debug unless they fail.
func RequestLogger(log *logger.Logger, quiet ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(quiet))
	for _, p := range quiet {
		skip[p] = true
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if log == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()
		fields := requestFields(c, route, status, time.Since(start))

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		case skip[route]:
			log.Debug("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

func requestFields(c *gin.Context, route string, status int, took time.Duration) []interface{} {
	ctx := c.Request.Context()
	fields := []interface{}{
		"method", c.Request.Method,
		"route", route,
		"status", status,
		"duration_ms", took.Milliseconds(),
	}
	// downloads carry the rendered document size
	if n := c.Writer.Size(); n > 0 {
		fields = append(fields, "bytes", n)
	}
	if td := ctxutil.GetTraceData(ctx); td != nil {
		fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
	}
	if sid := ctxutil.SessionID(ctx); sid != "" {
		fields = append(fields, "session_id", sid)
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}
	return fields
}
