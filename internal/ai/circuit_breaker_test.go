package ai

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"talentsift/internal/config"
	apperrors "talentsift/internal/errors"

	"google.golang.org/genai"
)

func testBreakerConfig(enabled bool) *config.AIConfig {
	return &config.AIConfig{
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestNewAICircuitBreakerDisabled(t *testing.T) {
	logger := apperrors.NewLogger(slog.LevelError)

	if cb := NewAICircuitBreaker("analysis", testBreakerConfig(false), logger); cb != nil {
		t.Error("expected nil breaker when disabled")
	}
	if cb := NewModelCircuitBreaker("analysis", testBreakerConfig(false), logger); cb != nil {
		t.Error("expected nil model breaker when disabled")
	}
}

func TestNilBreakerPassesThrough(t *testing.T) {
	var cb *AICircuitBreaker

	want := &genai.GenerateContentResponse{}
	got, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return want, nil
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != want {
		t.Error("Execute() did not pass the response through")
	}

	wantErr := errors.New("upstream failed")
	_, err = cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Execute() error = %v, want %v", err, wantErr)
	}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	logger := apperrors.NewLogger(slog.LevelError)
	cb := NewAICircuitBreaker("analysis", testBreakerConfig(true), logger)
	if cb == nil {
		t.Fatal("expected a breaker when enabled")
	}
	if !cb.IsHealthy() {
		t.Error("new breaker should be healthy")
	}

	fail := func() (*genai.GenerateContentResponse, error) {
		return nil, errors.New("boom")
	}
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(fail); err == nil {
			t.Fatal("expected failure")
		}
	}

	if cb.IsHealthy() {
		t.Error("breaker still healthy after tripping threshold")
	}
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	}); err == nil {
		t.Error("expected open breaker to reject the call")
	}
}

func TestGetStats(t *testing.T) {
	logger := apperrors.NewLogger(slog.LevelError)

	var nilBreaker *AICircuitBreaker
	stats := nilBreaker.GetStats()
	if enabled, ok := stats["enabled"].(bool); !ok || enabled {
		t.Errorf("nil breaker stats = %v, want enabled=false", stats)
	}

	cb := NewAICircuitBreaker("analysis", testBreakerConfig(true), logger)
	stats = cb.GetStats()
	if enabled, ok := stats["enabled"].(bool); !ok || !enabled {
		t.Errorf("stats = %v, want enabled=true", stats)
	}
	if stats["name"] != "AI-analysis" {
		t.Errorf("stats name = %v, want AI-analysis", stats["name"])
	}
	if stats["state"] != "closed" {
		t.Errorf("stats state = %v, want closed", stats["state"])
	}
}
