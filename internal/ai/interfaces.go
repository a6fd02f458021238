package ai

import (
	"context"

	"talentsift/internal/types"
)

// AIProvider interface for different AI implementations.
// AnalyzeCandidate returns token usage information - callers can ignore it if not needed.
type AIProvider interface {
	AnalyzeCandidate(ctx context.Context, input types.AnalyzeCandidateInput) (types.AnalysisResponse, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	GetCircuitBreakerStats() map[string]any
	Close() error
}
