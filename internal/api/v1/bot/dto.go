package bot

import "wealthengine-backend/internal/models"

type ListBotsResponse struct {
	Bots       []string        `json:"bots"`
	RecentRuns []models.BotRun `json:"recent_runs"`
}

type TriggerBotResponse struct {
	Status string `json:"status"`
	RunID  string `json:"run_id"`
}
