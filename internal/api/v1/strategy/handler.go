package strategy

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wealthengine-backend/internal/services"
	"wealthengine-backend/internal/utils"
	"wealthengine-backend/pkg/logger"
)

const apiVersion = "1.0.0"

// Handler serves the strategy endpoints. The engine is injected so tests and
// callers control its lifecycle.
type Handler struct {
	svc    *services.StrategyService
	engine *services.Engine
}

func NewHandler(svc *services.StrategyService, engine *services.Engine) *Handler {
	return &Handler{svc: svc, engine: engine}
}

// HealthCheck godoc
// @Summary Health check
// @Description Report service status and active generation model
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "wealthengine-backend is running",
		Version:   apiVersion,
		AIModel:   h.engine.ModelName(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ChatCompletions godoc
// @Summary Generate a money-making strategy
// @Description Generate a strategy for the prompt, enriched with similar past exchanges
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Generation request"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /v1/chat/completions [post]
func (h *Handler) ChatCompletions(c *gin.Context) {
	var req ChatRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.GenerateStrategy(c.Request.Context(), req.Prompt)
	if err != nil {
		logger.Log.Error("strategy generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Error generating strategy"))
		return
	}

	logger.Log.Info("generated strategy",
		zap.String("strategy_id", result.StrategyID),
		zap.String("prompt", truncate(req.Prompt, 50)))

	c.JSON(http.StatusOK, ChatResponse{
		Response:          result.Response,
		StrategyID:        result.StrategyID,
		Confidence:        result.Confidence,
		SuggestedActions:  result.SuggestedActions,
		EstimatedEarnings: result.EstimatedEarnings,
		Timestamp:         time.Now().Format(time.RFC3339),
	})
}

// GetHistory godoc
// @Summary Conversation history and analytics
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} utils.Response
// @Router /v1/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	recent, err := services.ListRecent(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Error retrieving history"))
		return
	}

	top, err := services.ListTop(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Error retrieving history"))
		return
	}

	conversations := make([]ConversationSummary, 0, len(recent))
	for _, ex := range recent {
		conversations = append(conversations, ConversationSummary{
			ID:           ex.ID,
			Prompt:       ex.Prompt,
			Response:     truncate(ex.Response, 200) + "...",
			Timestamp:    ex.CreatedAt.Format(time.RFC3339),
			SuccessScore: ex.SuccessScore,
			Earnings:     ex.Earnings,
		})
	}

	topPerforming := make([]TopPerformer, 0, len(top))
	for _, ex := range top {
		topPerforming = append(topPerforming, TopPerformer{
			ID:           ex.ID,
			Prompt:       ex.Prompt,
			SuccessScore: ex.SuccessScore,
			Earnings:     ex.Earnings,
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Conversations:   conversations,
		TotalStrategies: len(conversations),
		TopPerforming:   topPerforming,
	})
}

// SubmitFeedback godoc
// @Summary Submit feedback for a strategy
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback"
// @Success 200 {object} FeedbackResponse
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /v1/feedback [post]
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	id, err := strconv.ParseUint(req.StrategyID, 10, 64)
	if err != nil {
		// Synthetic temp_ identifiers are not stored rows and cannot take feedback.
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid strategy id"))
		return
	}

	if err := services.ApplyFeedback(uint(id), *req.SuccessScore, req.Earnings); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Strategy not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Error submitting feedback"))
		return
	}

	c.JSON(http.StatusOK, FeedbackResponse{
		Status:     "Feedback submitted successfully",
		StrategyID: req.StrategyID,
	})
}

// curatedStrategies is a fixed recommendation list, not derived from the store.
var curatedStrategies = []CuratedStrategy{
	{
		Title:             "Freelance Content Writing",
		Description:       "Write articles for businesses and blogs",
		EstimatedEarnings: "$100-300/day",
		TimeRequired:      "4-6 hours",
		Difficulty:        "Medium",
		SuccessRate:       0.85,
	},
	{
		Title:             "Social Media Management",
		Description:       "Manage social media accounts for small businesses",
		EstimatedEarnings: "$50-200/day",
		TimeRequired:      "2-4 hours",
		Difficulty:        "Easy",
		SuccessRate:       0.75,
	},
	{
		Title:             "Online Tutoring",
		Description:       "Teach subjects you're knowledgeable in",
		EstimatedEarnings: "$75-250/day",
		TimeRequired:      "3-5 hours",
		Difficulty:        "Medium",
		SuccessRate:       0.80,
	},
}

// GetTopStrategies godoc
// @Summary Top recommended strategies for today
// @Produce json
// @Success 200 {object} TopStrategiesResponse
// @Router /v1/top-strategies [get]
func (h *Handler) GetTopStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, TopStrategiesResponse{
		Strategies:  curatedStrategies,
		GeneratedAt: time.Now().Format(time.RFC3339),
		NextUpdate:  "tomorrow_9am",
	})
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
