package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/dashboard/internal/integration/ledgerapi"
)

// requestIDKey is the gin context key holding the request ID.
const requestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or assigns a new one, echoes it
// in the response and forwards it on calls to the ledger service.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(ledgerapi.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(ledgerapi.RequestIDHeader, id)
		c.Request = c.Request.WithContext(ledgerapi.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestIDFromContext retrieves the request ID set by RequestID.
func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestIDFromContext(c),
		}

		switch {
		case status >= 500:
			slog.ErrorContext(c.Request.Context(), "HTTP request", attrs...)
		case status >= 400:
			slog.WarnContext(c.Request.Context(), "HTTP request", attrs...)
		default:
			slog.InfoContext(c.Request.Context(), "HTTP request", attrs...)
		}
	}
}
