package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rish1507/RangiLalls-backend/internal/identity"
	"github.com/rish1507/RangiLalls-backend/services/bidding/helpers"
	"github.com/rish1507/RangiLalls-backend/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware resolves the bearer token to a user identity and aborts
// with 401 when it cannot
func AuthMiddleware(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "authentication required")
			c.Abort()
			return
		}
		c.Set(helpers.UserKey, user)
		c.Next()
	}
}
