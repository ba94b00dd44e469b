package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wealthengine-backend/config"
	"wealthengine-backend/internal/api/v1/bot"
	"wealthengine-backend/internal/api/v1/strategy"
	"wealthengine-backend/internal/database"
	"wealthengine-backend/internal/middleware"
	"wealthengine-backend/internal/services"
)

func NewRouter(cfg *config.Config) (*gin.Engine, *services.BotRunner, error) {
	_, err := database.Connect(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	// The API is consumed by a local UI shell; accept any origin.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          300,
	}))

	engine := services.NewEngine(cfg)
	svc := services.NewStrategyService(engine)
	strategyHandler := strategy.NewHandler(svc, engine)

	runner := services.NewBotRunner(cfg)
	services.RegisterDefaultBots(runner)
	botHandler := bot.NewHandler(runner)

	router.GET("/", strategyHandler.HealthCheck)

	v1 := router.Group("/v1")
	{
		strategy.RegisterRoutes(v1, strategyHandler)
		bot.RegisterRoutes(v1, botHandler)
	}

	return router, runner, nil
}
