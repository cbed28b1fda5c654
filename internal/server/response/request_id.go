package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys set by RequestIDMiddleware.
const (
	ContextKeyRequestID = "request_id"
	ContextKeyStartedAt = "started_at"
)

// RequestIDMiddleware assigns every request an ID, reusing X-Request-ID
// when the client sent one, and notes when the request arrived.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyStartedAt, time.Now().UTC())
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}
