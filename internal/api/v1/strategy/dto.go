package strategy

type ChatRequest struct {
	Prompt  string                 `json:"prompt" binding:"required"`
	UserID  string                 `json:"user_id"`
	Context map[string]interface{} `json:"context"`
}

type ChatResponse struct {
	Response          string   `json:"response"`
	StrategyID        string   `json:"strategy_id"`
	Confidence        float64  `json:"confidence"`
	SuggestedActions  []string `json:"suggested_actions"`
	EstimatedEarnings string   `json:"estimated_earnings"`
	Timestamp         string   `json:"timestamp"`
}

type ConversationSummary struct {
	ID           uint    `json:"id"`
	Prompt       string  `json:"prompt"`
	Response     string  `json:"response"`
	Timestamp    string  `json:"timestamp"`
	SuccessScore int     `json:"success_score"`
	Earnings     float64 `json:"earnings"`
}

type TopPerformer struct {
	ID           uint    `json:"id"`
	Prompt       string  `json:"prompt"`
	SuccessScore int     `json:"success_score"`
	Earnings     float64 `json:"earnings"`
}

type HistoryResponse struct {
	Conversations   []ConversationSummary `json:"conversations"`
	TotalStrategies int                   `json:"total_strategies"`
	TopPerforming   []TopPerformer        `json:"top_performing"`
}

type FeedbackRequest struct {
	StrategyID   string  `json:"strategy_id" binding:"required"`
	SuccessScore *int    `json:"success_score" binding:"required"`
	Earnings     float64 `json:"earnings"`
}

type FeedbackResponse struct {
	Status     string `json:"status"`
	StrategyID string `json:"strategy_id"`
}

type CuratedStrategy struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	EstimatedEarnings string  `json:"estimated_earnings"`
	TimeRequired      string  `json:"time_required"`
	Difficulty        string  `json:"difficulty"`
	SuccessRate       float64 `json:"success_rate"`
}

type TopStrategiesResponse struct {
	Strategies  []CuratedStrategy `json:"strategies"`
	GeneratedAt string            `json:"generated_at"`
	NextUpdate  string            `json:"next_update"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	AIModel   string `json:"ai_model"`
	Timestamp string `json:"timestamp"`
}
