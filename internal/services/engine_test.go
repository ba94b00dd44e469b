package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"wealthengine-backend/config"
	"wealthengine-backend/pkg/logger"
)

func newTestEngine(url, key string) *Engine {
	logger.Log = zap.NewNop()
	return NewEngine(&config.Config{
		EngineAPIURL:  url,
		EngineAPIKey:  key,
		EngineModel:   "test-model",
		EngineTimeout: 5,
	})
}

func TestEngineFallbackOnlyMode(t *testing.T) {
	engine := newTestEngine("http://localhost:1", "")

	assert.False(t, engine.Available())
	assert.Equal(t, "fallback", engine.ModelName())

	text, primary, err := engine.Generate(context.Background(), "invest in crypto")
	assert.NoError(t, err)
	assert.False(t, primary)
	assert.Equal(t, FallbackStrategy("invest in crypto"), text)
}

func TestEnginePrimaryPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"1. Do the thing that makes money"}}]}`))
	}))
	defer srv.Close()

	engine := newTestEngine(srv.URL, "test-key")
	assert.Equal(t, "test-model", engine.ModelName())

	text, primary, err := engine.Generate(context.Background(), "make money online")
	assert.NoError(t, err)
	assert.True(t, primary)
	assert.Equal(t, "1. Do the thing that makes money", text)
}

func TestEngineFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	engine := newTestEngine(srv.URL, "test-key")

	text, primary, err := engine.Generate(context.Background(), "sell products online")
	assert.NoError(t, err)
	assert.False(t, primary)
	assert.True(t, strings.HasPrefix(text, "**Money-Making Strategy for: sell products online**"))
}

func TestEngineFallsBackOnMalformedOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	engine := newTestEngine(srv.URL, "test-key")

	text, primary, err := engine.Generate(context.Background(), "freelance writing")
	assert.NoError(t, err)
	assert.False(t, primary)
	assert.Equal(t, FallbackStrategy("freelance writing"), text)
}

func TestEnginePropagatesCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"x"}}]}`))
	}))
	defer srv.Close()

	engine := newTestEngine(srv.URL, "test-key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := engine.Generate(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
}
