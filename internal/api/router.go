package api

import (
	"github.com/Xyscco/easy-finances/config"
	_ "github.com/Xyscco/easy-finances/docs"
	"github.com/Xyscco/easy-finances/internal/api/system"
	"github.com/Xyscco/easy-finances/internal/api/v1/auth"
	"github.com/Xyscco/easy-finances/internal/api/v1/settings"
	"github.com/Xyscco/easy-finances/internal/database"
	"github.com/Xyscco/easy-finances/internal/middleware"
	"github.com/Xyscco/easy-finances/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Redis is an optional cache; the services degrade to plain DB reads
	// when it is absent.
	if cfg.RedisAddr != "" {
		if err := database.ConnectRedis(cfg); err != nil {
			logger.Log.Warn("redis unavailable, user cache disabled")
			database.RedisClient = nil
		}
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	system.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)
		settings.RegisterRoutes(v1)
	}

	return router, nil
}
