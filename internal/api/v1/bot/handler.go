package bot

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthengine-backend/internal/services"
	"wealthengine-backend/internal/utils"
)

// Handler serves the bot endpoints against an injected runner.
type Handler struct {
	runner *services.BotRunner
}

func NewHandler(runner *services.BotRunner) *Handler {
	return &Handler{runner: runner}
}

// ListBots godoc
// @Summary List registered bots and recent runs
// @Produce json
// @Success 200 {object} ListBotsResponse
// @Failure 500 {object} utils.Response
// @Router /v1/bots [get]
func (h *Handler) ListBots(c *gin.Context) {
	runs, err := services.ListBotRuns(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Error retrieving bot runs"))
		return
	}

	c.JSON(http.StatusOK, ListBotsResponse{
		Bots:       h.runner.BotNames(),
		RecentRuns: runs,
	})
}

// TriggerBot godoc
// @Summary Trigger one bot run
// @Produce json
// @Param name path string true "Bot name"
// @Success 200 {object} TriggerBotResponse
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /v1/bots/{name}/run [post]
func (h *Handler) TriggerBot(c *gin.Context) {
	name := c.Param("name")

	runID, err := h.runner.Trigger(name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Unknown bot"))
			return
		}
		if errors.Is(err, services.ErrBotRunning) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Bot is already running"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Error triggering bot"))
		return
	}

	c.JSON(http.StatusOK, TriggerBotResponse{
		Status: "Bot run started",
		RunID:  runID,
	})
}
