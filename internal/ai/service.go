package ai

import (
	"context"
	"fmt"

	"talentsift/internal/config"
	"talentsift/internal/errors"
	"talentsift/internal/types"
)

// Service handles the AI-assisted analysis path. Availability is decided
// once at construction from credential presence: a service built without an
// API key has no provider and reports unavailable for the process lifetime.
type Service struct {
	Provider  AIProvider
	available bool
	config    *config.AIConfig
	logger    *errors.Logger
}

// NewService creates a new AI service instance. A missing API key is not an
// error: the service comes up unavailable and callers fall back to the
// deterministic path.
func NewService(cfg *config.AIConfig, maxPromptResumeChars int, logger *errors.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		logger.Info("AI analysis disabled, no API key configured",
			"provider", cfg.Provider)
		return &Service{
			available: false,
			config:    cfg,
			logger:    logger,
		}, nil
	}

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries,
		"use_system_prompts", cfg.UseSystemPrompts)

	var provider AIProvider
	var err error

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, maxPromptResumeChars, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider:  provider,
		available: true,
		config:    cfg,
		logger:    logger,
	}, nil
}

// Available reports whether the AI path can be attempted at all.
func (s *Service) Available() bool {
	return s != nil && s.available && s.Provider != nil
}

// AnalyzeCandidate delegates to the provider, guarding against use of an
// unavailable service.
func (s *Service) AnalyzeCandidate(ctx context.Context, input types.AnalyzeCandidateInput) (types.AnalysisResponse, *TokenUsage, error) {
	if !s.Available() {
		return types.AnalysisResponse{}, nil, errors.NewAIError(errors.ErrCodeAIUnavailable,
			"AI service is not configured", nil)
	}
	return s.Provider.AnalyzeCandidate(ctx, input)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) *ModelInfo {
	if !s.Available() {
		return &ModelInfo{Available: false, Error: "AI service not configured"}
	}
	return s.Provider.GetModelInfo(ctx)
}

// GetCircuitBreakerStats reports the state of the provider's circuit breakers.
func (s *Service) GetCircuitBreakerStats() map[string]any {
	if !s.Available() {
		return map[string]any{"enabled": false}
	}
	return s.Provider.GetCircuitBreakerStats()
}

// Close releases provider resources.
func (s *Service) Close() error {
	if s == nil || s.Provider == nil {
		return nil
	}
	return s.Provider.Close()
}
