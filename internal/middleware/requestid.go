package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
)

const (
	RequestIDHeader    = "X-Request-ID"
	ContextRequestID   = "requestID"
	maxRequestIDLength = 128
)

// RequestID reuses an inbound X-Request-ID or mints one, and puts a
// request-scoped logger on the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
