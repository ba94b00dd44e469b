package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wealthengine-backend/internal/models"
	"wealthengine-backend/pkg/logger"
)

// StrategyResult is the structured outcome of one generation request.
type StrategyResult struct {
	Response          string
	StrategyID        string
	Confidence        float64
	SuggestedActions  []string
	EstimatedEarnings string
}

// StrategyService sequences a request: similarity lookup, generation,
// enrichment, persistence, post-processing. It holds no per-request state.
type StrategyService struct {
	engine *Engine
}

func NewStrategyService(engine *Engine) *StrategyService {
	return &StrategyService{engine: engine}
}

// GenerateStrategy handles one prompt end to end. It only errors for
// propagate-class failures; everything else degrades and still produces a
// strategy.
func (s *StrategyService) GenerateStrategy(ctx context.Context, prompt string) (*StrategyResult, error) {
	similar, err := FindSimilar(prompt, 5)
	if err != nil {
		// Lookup failure degrades to "no similar strategies".
		logger.Log.Error("similarity lookup failed", zap.Error(err))
		similar = nil
	}

	fingerprint := models.Fingerprint(prompt)

	var strategy string
	var primary bool
	if cached, cachedPrimary, ok := CachedStrategy(fingerprint); ok {
		// The cached provenance decides the grade, not the current engine state.
		strategy = cached
		primary = cachedPrimary
		logger.Log.Info("strategy cache hit", zap.String("fingerprint", fingerprint))
	} else {
		strategy, primary, err = s.engine.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		CacheStrategy(fingerprint, strategy, primary)
	}

	if len(similar) > 0 {
		strategy += fmt.Sprintf("\n\n**Based on %d similar queries, here are additional insights:**\n", len(similar))
		for i, sim := range similar {
			if i == 2 {
				break
			}
			strategy += fmt.Sprintf("%d. Previous approach: %s...\n", i+1, truncateRunes(sim.Prompt, 100))
		}
	}

	strategyID := SaveExchange(prompt, strategy)

	confidence := 0.6
	if primary {
		confidence = 0.8
	}
	if len(similar) > 0 {
		confidence += 0.1
	}
	if confidence > 0.95 {
		confidence = 0.95
	}

	return &StrategyResult{
		Response:          strategy,
		StrategyID:        strategyID,
		Confidence:        confidence,
		SuggestedActions:  ExtractActions(strategy),
		EstimatedEarnings: EstimateEarnings(prompt, strategy),
	}, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
