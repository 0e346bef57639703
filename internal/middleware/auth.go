// ================== internal/middleware/auth.go ==================
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/response"
	"github.com/xyz-asif/studycoach/internal/pkg/token"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id
	ContextUserID = "userID"

	// TokenCookie is the HttpOnly cookie carrying the session token
	TokenCookie = "token"
)

// TokenSource pulls a raw credential out of a request, or "" if absent
type TokenSource func(r *http.Request) string

// BearerHeader reads "Authorization: Bearer <token>"
func BearerHeader(r *http.Request) string {
	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}
	return ""
}

// CookieSource reads the named cookie
func CookieSource(name string) TokenSource {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// DefaultSources is the lookup order for session tokens
var DefaultSources = []TokenSource{BearerHeader, CookieSource(TokenCookie)}

// ExtractToken returns the first non-empty credential from sources
func ExtractToken(r *http.Request, sources ...TokenSource) string {
	for _, source := range sources {
		if tok := source(r); tok != "" {
			return tok
		}
	}
	return ""
}

// Auth rejects requests without a valid session token
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c.Request, DefaultSources...)
		if tokenString == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			logger.Ctx(c.Request.Context()).Debug().Err(err).Msg("Rejected session token")
			response.Unauthorized(c, "Invalid token", "AUTH_INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and never rejects
func OptionalAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := ExtractToken(c.Request, DefaultSources...); tokenString != "" {
			if claims, err := tokens.Validate(tokenString); err == nil {
				c.Set(ContextUserID, claims.UserID)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" for anonymous requests
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
