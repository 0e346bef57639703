package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /users/me. Only the favorite status lookup is
// reachable without a session.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, requireAuth, optionalAuth gin.HandlerFunc) {
	me := router.Group("/users/me")
	{
		me.GET("", requireAuth, handler.GetProfile)
		me.GET("/account", requireAuth, handler.GetAccount)
		me.PATCH("/profile", requireAuth, handler.UpdateProfile)

		me.GET("/favorites", requireAuth, handler.ListFavorites)
		me.GET("/favorites/:module_id", optionalAuth, handler.FavoriteStatus)
		me.PUT("/favorites/:module_id", requireAuth, handler.AddFavorite)
		me.DELETE("/favorites/:module_id", requireAuth, handler.RemoveFavorite)

		me.GET("/enrollments", requireAuth, handler.ListEnrollments)
		me.POST("/enrollments", requireAuth, handler.Enroll)
		me.DELETE("/enrollments/:module_id", requireAuth, handler.Unenroll)
	}
}
