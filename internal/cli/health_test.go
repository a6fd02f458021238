package cli

import (
	"context"
	"log/slog"
	"testing"

	"talentsift/internal/ai"
	"talentsift/internal/config"
	"talentsift/internal/errors"
)

func TestBuildHealthReportWithoutAPIKey(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	cfg := &config.AIConfig{Provider: "gemini", APIKey: ""}

	service, err := ai.NewService(cfg, 4000, logger)
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	report := buildHealthReport(context.Background(), service, cfg.Provider)

	if report.AIAvailable {
		t.Error("AIAvailable = true without an API key")
	}
	if report.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", report.Provider)
	}
	// No remote probe without a provider.
	if report.Model != nil {
		t.Errorf("Model = %+v, want nil", report.Model)
	}
	if enabled, ok := report.CircuitBreakers["enabled"].(bool); !ok || enabled {
		t.Errorf("CircuitBreakers = %v, want enabled=false", report.CircuitBreakers)
	}
}
