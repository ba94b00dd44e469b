package services

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"wealthengine-backend/config"
	"wealthengine-backend/internal/database"
	"wealthengine-backend/internal/models"
	"wealthengine-backend/pkg/logger"
)

const BotRunQueueKey = "bot_run_queue"

// Bot is one background automation. Bots never touch request state directly;
// they only share data through the store.
type Bot interface {
	Name() string
	Run(ctx context.Context) (map[string]interface{}, error)
}

// BotRunner holds the bot registry and the background schedule. Runs happen
// on an independent ticker outside the request path.
type BotRunner struct {
	mu       sync.RWMutex
	bots     map[string]Bot
	running  sync.Map
	interval time.Duration
	// retention window for stored exchanges; zero disables pruning
	retention time.Duration
	stopChan  chan struct{}
}

func NewBotRunner(cfg *config.Config) *BotRunner {
	return &BotRunner{
		bots:      make(map[string]Bot),
		interval:  time.Duration(cfg.BotIntervalMins) * time.Minute,
		retention: time.Duration(cfg.RetentionDays) * 24 * time.Hour,
		stopChan:  make(chan struct{}),
	}
}

// Register adds a bot to the registry.
func (r *BotRunner) Register(b Bot) {
	r.mu.Lock()
	r.bots[b.Name()] = b
	r.mu.Unlock()
}

// BotNames returns the registered bot names, sorted.
func (r *BotRunner) BotNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.bots))
	for name := range r.bots {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Trigger starts one bot run in the background and returns its run id.
// Returns ErrNotFound for an unknown bot and ErrBotRunning while a previous
// run of the same bot is still in flight.
func (r *BotRunner) Trigger(name string) (string, error) {
	r.mu.RLock()
	bot, ok := r.bots[name]
	r.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}

	if _, loaded := r.running.LoadOrStore(name, struct{}{}); loaded {
		return "", ErrBotRunning
	}

	runID := uuid.New().String()
	run := models.BotRun{
		RunID:     runID,
		BotName:   name,
		Status:    models.BotRunStatusRunning,
		StartedAt: time.Now(),
	}
	if err := database.DB.Create(&run).Error; err != nil {
		r.running.Delete(name)
		return "", err
	}

	go r.execute(bot, runID)

	return runID, nil
}

// Start runs the scheduler loop until Stop is called. Each tick triggers
// every registered bot once and applies the retention sweep.
func (r *BotRunner) Start() {
	logger.Log.Info("bot runner started", zap.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.runAll()
			r.sweep()
		case <-r.stopChan:
			return
		}
	}
}

// Stop terminates the scheduler loop.
func (r *BotRunner) Stop() {
	close(r.stopChan)
}

func (r *BotRunner) runAll() {
	for _, name := range r.BotNames() {
		if _, err := r.Trigger(name); err != nil {
			logger.Log.Warn("scheduled bot not triggered",
				zap.String("bot", name),
				zap.Error(err))
		}
	}
}

func (r *BotRunner) sweep() {
	if r.retention <= 0 {
		return
	}
	pruned, err := PruneExchanges(r.retention)
	if err != nil {
		logger.Log.Error("retention sweep failed", zap.Error(err))
		return
	}
	if pruned > 0 {
		logger.Log.Info("retention sweep pruned exchanges", zap.Int64("count", pruned))
	}
}

func (r *BotRunner) execute(bot Bot, runID string) {
	defer r.running.Delete(bot.Name())

	result, err := bot.Run(context.Background())

	var run models.BotRun
	if dbErr := database.DB.Where("run_id = ?", runID).First(&run).Error; dbErr != nil {
		logger.Log.Error("bot run row missing",
			zap.String("run_id", runID),
			zap.Error(dbErr))
		return
	}

	now := time.Now()
	run.EndedAt = &now

	if err != nil {
		run.Status = models.BotRunStatusFailed
		run.ErrorLog = err.Error()
		logger.Log.Error("bot run failed",
			zap.String("bot", bot.Name()),
			zap.String("run_id", runID),
			zap.Error(err))
	} else {
		run.Status = models.BotRunStatusCompleted
		if payload, marshalErr := json.Marshal(result); marshalErr == nil {
			run.Result = datatypes.JSON(payload)
		}
		logger.Log.Info("bot run completed",
			zap.String("bot", bot.Name()),
			zap.String("run_id", runID))
	}

	if err := database.DB.Save(&run).Error; err != nil {
		logger.Log.Error("failed to save bot run", zap.Error(err))
		return
	}

	if err := database.RedisClient.RPush(database.Ctx, BotRunQueueKey, runID).Err(); err != nil {
		logger.Log.Warn("failed to enqueue bot run", zap.Error(err))
	}
}

// ListBotRuns returns the most recent bot runs.
func ListBotRuns(limit int) ([]models.BotRun, error) {
	var runs []models.BotRun
	err := database.DB.Order("started_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}
