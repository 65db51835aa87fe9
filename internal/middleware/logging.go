package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request id generation
	"github.com/sirupsen/logrus" // Logging library
)

// RequestIDHeader is echoed on every response
const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id and logs one line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader) // Honour caller-supplied id
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched" // 404 from the router itself
		}
		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestID,                        // Correlation id
			"method":     c.Request.Method,                 // HTTP method
			"route":      route,                            // Route pattern
			"status":     c.Writer.Status(),                // Response status
			"latency_ms": time.Since(start).Milliseconds(), // Handling time
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}
