package recommendations

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, optionalAuth gin.HandlerFunc) {
	router.POST("/recommend", optionalAuth, handler.Recommend)
}
