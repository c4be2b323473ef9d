package settings

import (
	"github.com/Xyscco/easy-finances/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/configuracoes")
	group.Use(middleware.AuthMiddleware())
	group.GET("", Get)
	group.PUT("", Update)
}
