package bot_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wealthengine-backend/config"
	"wealthengine-backend/internal/api/v1/bot"
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

func newTestHandler() *bot.Handler {
	runner := services.NewBotRunner(&config.Config{BotIntervalMins: 60})
	services.RegisterDefaultBots(runner)
	return bot.NewHandler(runner)
}

func TestListBots(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/v1/bots", nil)

	h.ListBots(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp bot.ListBotsResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, []string{"blog_bot", "ebook_bot", "email_bot", "freelance_bot"}, resp.Bots)
	assert.Empty(t, resp.RecentRuns)
}

func TestTriggerBot(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/bots/blog_bot/run", nil)
	c.Params = gin.Params{{Key: "name", Value: "blog_bot"}}

	h.TriggerBot(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp bot.TriggerBotResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Bot run started", resp.Status)
	assert.NotEmpty(t, resp.RunID)

	var run models.BotRun
	err := database.DB.Where("run_id = ?", resp.RunID).First(&run).Error
	assert.NoError(t, err)
	assert.Equal(t, "blog_bot", run.BotName)
}

func TestTriggerBotUnknown(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	h := newTestHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/v1/bots/nope/run", nil)
	c.Params = gin.Params{{Key: "name", Value: "nope"}}

	h.TriggerBot(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
