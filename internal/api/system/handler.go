package system

import (
	"net/http"
	"time"

	"github.com/Xyscco/easy-finances/internal/database"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Root godoc
// @Summary Informações da API
// @Tags sistema
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API de Gerenciamento Financeiro",
		"version": apiVersion,
		"status":  "online",
		"docs":    "/swagger/index.html",
		"endpoints": gin.H{
			"registrar":     "/api/v1/auth/registrar",
			"login":         "/api/v1/auth/login",
			"perfil":        "/api/v1/auth/me",
			"configuracoes": "/api/v1/configuracoes",
		},
	})
}

// Health godoc
// @Summary Verifica a saúde da aplicação e do banco
// @Tags sistema
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func Health(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": timestamp,
	})
}

// Routes lists every registered route.
func Routes(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := engine.Routes()

		list := make([]gin.H, 0, len(routes))
		for _, route := range routes {
			list = append(list, gin.H{
				"method": route.Method,
				"path":   route.Path,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"total_routes": len(list),
			"routes":       list,
		})
	}
}

func RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", Root)
	engine.GET("/health", Health)
	engine.GET("/routes", Routes(engine))
}
