package strategy

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/chat/completions", h.ChatCompletions)
	router.GET("/history", h.GetHistory)
	router.POST("/feedback", h.SubmitFeedback)
	router.GET("/top-strategies", h.GetTopStrategies)
}
