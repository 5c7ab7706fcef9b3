package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// requestIDMiddleware tags every request with a uuid for log correlation
// and logs one line per request with status and latency.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := uuid.NewString()
	c.Set(requestIDKey, id)
	c.Writer.Header().Set("X-Request-ID", id)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
