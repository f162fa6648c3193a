package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PipelineAuthMiddleware guards the projection ingestion endpoints with the
// shared X-API-Key. An empty configured key disables them.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, http.StatusServiceUnavailable, "PIPELINE_NOT_CONFIGURED", "Projection ingestion is not configured")
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, http.StatusUnauthorized, "INVALID_API_KEY", "Invalid or missing API key")
			return
		}
		c.Next()
	}
}
