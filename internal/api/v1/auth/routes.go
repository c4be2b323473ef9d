package auth

import (
	"github.com/Xyscco/easy-finances/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/registrar", Register)
	auth.POST("/login", Login)
	auth.POST("/logout", Logout)
	auth.GET("/me", middleware.AuthMiddleware(), Me)
}
