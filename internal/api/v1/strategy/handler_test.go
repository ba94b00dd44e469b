package strategy_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wealthengine-backend/config"
	"wealthengine-backend/internal/api/v1/strategy"
	"wealthengine-backend/internal/database"
	"wealthengine-backend/internal/models"
	"wealthengine-backend/internal/services"
	"wealthengine-backend/pkg/logger"
)

func setupTestDB() {
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	db.Migrator().DropTable(&models.Exchange{}, &models.BotRun{})
	err = db.AutoMigrate(&models.Exchange{}, &models.BotRun{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func newTestHandler() *strategy.Handler {
	engine := services.NewEngine(&config.Config{
		EngineAPIURL:  "http://localhost:1",
		EngineModel:   "test-model",
		EngineTimeout: 5,
	})
	return strategy.NewHandler(services.NewStrategyService(engine), engine)
}

func TestHealthCheck(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/", nil)

	h.HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp strategy.HealthResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "fallback", resp.AIModel)
	assert.NotEmpty(t, resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestChatCompletions(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	reqBody := strategy.ChatRequest{Prompt: "I want to freelance write articles"}
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/chat/completions", bytes.NewBuffer(body))

	h.ChatCompletions(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp strategy.ChatResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp.Response, "Money-Making Strategy for: I want to freelance write articles")
	assert.Contains(t, resp.Response, "Create profiles on Upwork, Fiverr, and Freelancer")
	assert.NotEmpty(t, resp.StrategyID)
	assert.Equal(t, 0.6, resp.Confidence)
	assert.NotEmpty(t, resp.SuggestedActions)
	assert.NotEmpty(t, resp.EstimatedEarnings)

	// The chat endpoint always answers 200 with a strategy, even with the
	// generative upstream unconfigured.
	var count int64
	database.DB.Model(&models.Exchange{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestChatCompletionsMissingPrompt(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/chat/completions", bytes.NewBufferString(`{}`))

	h.ChatCompletions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistory(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	services.SaveExchange("first prompt", strings.Repeat("x", 300))
	services.SaveExchange("second prompt", "short response")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/v1/history", nil)

	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp strategy.HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.TotalStrategies)
	assert.Len(t, resp.Conversations, 2)
	for _, conv := range resp.Conversations {
		// Responses are truncated for the listing
		assert.LessOrEqual(t, len(conv.Response), 203)
		assert.True(t, strings.HasSuffix(conv.Response, "..."))
	}
	assert.Empty(t, resp.TopPerforming)
}

func TestSubmitFeedback(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	id := services.SaveExchange("feedback target", "a strategy")

	score := 9
	reqBody := strategy.FeedbackRequest{StrategyID: id, SuccessScore: &score, Earnings: 250}
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/feedback", bytes.NewBuffer(body))

	h.SubmitFeedback(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var ex models.Exchange
	database.DB.First(&ex)
	assert.Equal(t, 9, ex.SuccessScore)
	assert.Equal(t, 250.0, ex.Earnings)
}

func TestSubmitFeedbackUnknownStrategy(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	score := 5
	reqBody := strategy.FeedbackRequest{StrategyID: "9999", SuccessScore: &score}
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/feedback", bytes.NewBuffer(body))

	h.SubmitFeedback(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitFeedbackSyntheticID(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	score := 5
	reqBody := strategy.FeedbackRequest{StrategyID: "temp_1234567890", SuccessScore: &score}
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/feedback", bytes.NewBuffer(body))

	h.SubmitFeedback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTopStrategies(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/v1/top-strategies", nil)

	h.GetTopStrategies(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp strategy.TopStrategiesResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Strategies, 3)
	assert.Equal(t, "Freelance Content Writing", resp.Strategies[0].Title)
	assert.Equal(t, "tomorrow_9am", resp.NextUpdate)
}
