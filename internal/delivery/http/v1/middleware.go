package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// HandleRequestLogger attaches a request-scoped logger to the request
// context and logs the outcome once the request is handled.
func (h *handlerImpl) HandleRequestLogger(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to generate request id")
			id = uuid.New()
		}
		requestID = id.String()
	}
	c.Header(requestIDHeader, requestID)

	logger := h.logger.With().
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("route", c.FullPath()).
		Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

	start := time.Now()
	c.Next()

	logger.Info().
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("handled request")
}
