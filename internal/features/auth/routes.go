package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /auth. requireAuth guards account endpoints and
// limit throttles the credential endpoints.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, requireAuth, limit gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", limit, handler.Register)
		auth.POST("/login", limit, handler.Login)
		auth.POST("/logout", handler.Logout)

		auth.GET("", requireAuth, handler.Me)
		auth.PATCH("", requireAuth, handler.Update)
		auth.DELETE("", requireAuth, handler.Delete)
		auth.PATCH("/password", requireAuth, handler.UpdatePassword)
	}
}
