package modules

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the read-only catalog under /modules
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, optionalAuth gin.HandlerFunc) {
	modules := router.Group("/modules")
	modules.Use(optionalAuth)
	{
		modules.GET("", handler.List)
		modules.GET("/:id", handler.Get)
	}
}
