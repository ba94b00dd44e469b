package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"wealthengine-backend/internal/database"
	"wealthengine-backend/internal/models"
	"wealthengine-backend/pkg/logger"
)

const (
	StrategyCacheKeyPrefix = "strategy:fp:"
	StrategyCacheDuration  = 24 * time.Hour
)

// SaveExchange inserts or replaces the exchange row for the prompt's
// fingerprint and returns its identifier. The write is a single ON CONFLICT
// upsert so two concurrent callers with the same normalized prompt cannot
// race into duplicate rows. A store failure never fails the caller: a
// synthetic temp_<ts> identifier is returned and the error is logged.
func SaveExchange(prompt, response string) string {
	fingerprint := models.Fingerprint(prompt)

	exchange := models.Exchange{
		Fingerprint: fingerprint,
		Prompt:      prompt,
		Response:    response,
	}

	// created_at and the feedback fields survive an overwrite: only the text
	// columns follow last-write-wins.
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fingerprint"}},
		DoUpdates: clause.AssignmentColumns([]string{"prompt", "response"}),
	}).Create(&exchange).Error
	if err != nil {
		logger.Log.Error("failed to save exchange", zap.Error(err))
		return fmt.Sprintf("temp_%d", time.Now().UnixNano())
	}

	// On a conflict-update the returned ID is not reliable across drivers,
	// so resolve it through the unique fingerprint.
	var saved models.Exchange
	if err := database.DB.Select("id").Where("fingerprint = ?", fingerprint).First(&saved).Error; err != nil {
		logger.Log.Error("failed to resolve exchange id", zap.Error(err))
		return fmt.Sprintf("temp_%d", time.Now().UnixNano())
	}

	return strconv.FormatUint(uint64(saved.ID), 10)
}

// ApplyFeedback updates the mutable feedback fields of an exchange.
// Returns ErrNotFound if no row has that id.
func ApplyFeedback(id uint, successScore int, earnings float64) error {
	result := database.DB.Model(&models.Exchange{}).Where("id = ?", id).Updates(map[string]interface{}{
		"success_score": successScore,
		"earnings":      earnings,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent returns the most recently created exchanges.
func ListRecent(limit int) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	err := database.DB.Order("created_at desc").Limit(limit).Find(&exchanges).Error
	return exchanges, err
}

// ListTop returns exchanges with positive feedback, best first.
func ListTop(limit int) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	err := database.DB.Where("success_score > 0").
		Order("success_score desc, earnings desc").
		Limit(limit).
		Find(&exchanges).Error
	return exchanges, err
}

// FindSimilar returns the most recent exchanges whose stored prompt contains
// any of the first 5 whitespace tokens of the given prompt as a
// case-insensitive substring. An all-whitespace prompt matches nothing.
func FindSimilar(prompt string, maxResults int) ([]models.Exchange, error) {
	tokens := strings.Fields(prompt)
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > 5 {
		tokens = tokens[:5]
	}

	conditions := database.DB
	for i, token := range tokens {
		pattern := "%" + strings.ToLower(token) + "%"
		if i == 0 {
			conditions = conditions.Where("LOWER(prompt) LIKE ?", pattern)
		} else {
			conditions = conditions.Or("LOWER(prompt) LIKE ?", pattern)
		}
	}

	var exchanges []models.Exchange
	err := database.DB.Where(conditions).
		Order("created_at desc").
		Limit(maxResults).
		Find(&exchanges).Error
	return exchanges, err
}

// PruneExchanges deletes exchanges older than the retention window and
// returns how many rows were removed.
func PruneExchanges(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result := database.DB.Where("created_at < ?", cutoff).Delete(&models.Exchange{})
	return result.RowsAffected, result.Error
}

// cachedStrategy is the redis cache entry. Primary records which generation
// path produced the text so a cache hit keeps its original confidence grade.
type cachedStrategy struct {
	Text    string `json:"text"`
	Primary bool   `json:"primary"`
}

// CachedStrategy looks up a previously generated strategy for the fingerprint
// in redis. The bools report the cached provenance and whether there was a
// hit; a miss, cache failure or undecodable entry all read as a miss.
func CachedStrategy(fingerprint string) (string, bool, bool) {
	val, err := database.RedisClient.Get(database.Ctx, StrategyCacheKeyPrefix+fingerprint).Result()
	if err != nil {
		return "", false, false
	}

	var entry cachedStrategy
	if err := json.Unmarshal([]byte(val), &entry); err != nil || entry.Text == "" {
		return "", false, false
	}
	return entry.Text, entry.Primary, true
}

// CacheStrategy stores a generated strategy and its provenance under the
// fingerprint with a TTL. Cache failures are ignored: the store stays
// authoritative.
func CacheStrategy(fingerprint, strategy string, primary bool) {
	payload, err := json.Marshal(cachedStrategy{Text: strategy, Primary: primary})
	if err != nil {
		return
	}
	database.RedisClient.Set(database.Ctx, StrategyCacheKeyPrefix+fingerprint, payload, StrategyCacheDuration)
}
