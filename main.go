package main

import (
	"log"

	"github.com/Xyscco/easy-finances/config"
	"github.com/Xyscco/easy-finances/internal/api"
	"github.com/Xyscco/easy-finances/internal/database"
	"github.com/Xyscco/easy-finances/pkg/logger"
)

// @title Financial Management API
// @version 1.0.0
// @description API de Gerenciamento Financeiro - autenticação e entidades financeiras

// @host localhost:8000
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(":8000"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
