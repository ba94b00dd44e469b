package models

import (
	"time"

	"gorm.io/datatypes"
)

// BotRunStatus defines the status of a bot run
type BotRunStatus int

const (
	BotRunStatusRunning   BotRunStatus = 1
	BotRunStatusCompleted BotRunStatus = 2
	BotRunStatusFailed    BotRunStatus = 3
)

// BotRun records one execution of a background bot
type BotRun struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	RunID     string         `gorm:"uniqueIndex;not null" json:"run_id"`
	BotName   string         `gorm:"index;not null" json:"bot_name"`
	Status    BotRunStatus   `json:"status"`
	Result    datatypes.JSON `json:"result" swaggertype:"object"`
	ErrorLog  string         `json:"error_log"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
}

// TableName overrides the table name
func (BotRun) TableName() string {
	return "bot_runs"
}
