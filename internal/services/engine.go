package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wealthengine-backend/config"
	"wealthengine-backend/internal/utils"
	"wealthengine-backend/pkg/logger"
)

const strategyInstruction = `As an expert financial strategist and entrepreneur, provide a detailed, actionable money-making strategy for the user's goal.

Consider these factors:
1. Timeline and realistic expectations
2. Required skills and resources
3. Step-by-step action plan
4. Potential earnings and ROI
5. Risk assessment and mitigation
6. Scalability options`

// Engine generates strategy text. The primary path delegates to an external
// chat-completions API; every primary-path failure falls through to the
// deterministic template generator. It is constructed explicitly and
// injected, never a process-wide singleton, and a missing API key only means
// fallback-only mode.
type Engine struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		apiURL: cfg.EngineAPIURL,
		apiKey: cfg.EngineAPIKey,
		model:  cfg.EngineModel,
		client: utils.NewHTTPClient(time.Duration(cfg.EngineTimeout) * time.Second),
	}
}

// Available reports whether the primary generative path is configured.
func (e *Engine) Available() bool {
	return e.apiKey != ""
}

// ModelName returns the upstream model identifier, or "fallback" when the
// engine runs in fallback-only mode.
func (e *Engine) ModelName() string {
	if e.Available() {
		return e.model
	}
	return "fallback"
}

type failurePolicy int

const (
	policyFallback failurePolicy = iota
	policyPropagate
)

// policyFor maps each failure kind to an explicit handling policy instead of
// blanket-catching. Only a dead client context propagates; upstream trouble
// of any kind degrades to the deterministic path.
func policyFor(err error) failurePolicy {
	switch {
	case errors.Is(err, context.Canceled):
		return policyPropagate
	case errors.Is(err, ErrUpstreamUnavailable), errors.Is(err, ErrMalformedOutput), errors.Is(err, context.DeadlineExceeded):
		return policyFallback
	default:
		return policyFallback
	}
}

// Generate produces strategy text for the prompt. The returned bool reports
// whether the primary generative path produced the text. A non-nil error is
// only returned for propagate-class failures.
func (e *Engine) Generate(ctx context.Context, prompt string) (string, bool, error) {
	if e.Available() {
		text, err := e.generateUpstream(ctx, prompt)
		if err == nil {
			return text, true, nil
		}
		if policyFor(err) == policyPropagate {
			return "", false, err
		}
		logger.Log.Warn("primary generation failed, using fallback",
			zap.Error(err))
	}
	return FallbackStrategy(prompt), false, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (e *Engine) generateUpstream(ctx context.Context, prompt string) (string, error) {
	aiReq := chatCompletionRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: strategyInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	reqBody, err := json.Marshal(aiReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", e.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", e.apiKey))

	resp, err := e.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var aiResp chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &aiResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedOutput)
	}

	text := strings.TrimSpace(aiResp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformedOutput)
	}

	return text, nil
}
