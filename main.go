package main

import (
	"log"

	"wealthengine-backend/config"
	"wealthengine-backend/internal/api"
	"wealthengine-backend/internal/database"
	"wealthengine-backend/internal/models"
	"wealthengine-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, runner, err := api.NewRouter(cfg)
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.Exchange{}, &models.BotRun{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if cfg.BotAutoRun {
		go runner.Start()
		defer runner.Stop()
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
