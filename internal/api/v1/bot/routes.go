package bot

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	botGroup := router.Group("/bots")
	{
		botGroup.GET("", h.ListBots)
		botGroup.POST("/:name/run", h.TriggerBot)
	}
}
