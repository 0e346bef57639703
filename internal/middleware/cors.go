// ================== internal/middleware/cors.go ==================
package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows credentialed requests from the comma-separated origins.
// "*" echoes any origin since browsers reject a wildcard with credentials.
func CORS(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if strings.TrimSpace(allowedOrigins) == "*" {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
			}
		}
	}

	return cors.New(cfg)
}
