package cli

import (
	"context"
	"fmt"

	"talentsift/internal/ai"
	"talentsift/internal/common"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Report AI service health",
	Long: `Report the availability of the configured AI model and the state of the
circuit breakers guarding it. Without an API key the AI path is reported
unavailable; screening still works through the rule-based scorer.`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

var healthConfig common.CommandConfig

func init() {
	healthCmd.Flags().StringVarP(&healthConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
}

// healthReport is the health command's output document.
type healthReport struct {
	AIAvailable     bool           `json:"aiAvailable"`
	Provider        string         `json:"provider"`
	Model           *ai.ModelInfo  `json:"model,omitempty"`
	CircuitBreakers map[string]any `json:"circuitBreakers"`
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	aiService, err := ai.NewService(&cfg.AI, cfg.Screening.MaxPromptResumeChars, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.Warn("Failed to close AI service", "error", err)
		}
	}()

	report := buildHealthReport(cmd.Context(), aiService, cfg.AI.Provider)

	logger.Info("AI health check completed",
		"provider", report.Provider,
		"ai_available", report.AIAvailable)

	// Health output is a diagnostic document; it is always JSON.
	healthConfig.OutputFormat = "json"
	return common.NewOutputHandler(logger).HandleOutput(report, healthConfig)
}

// buildHealthReport probes the model only when the service is available; an
// unconfigured service is reported as unavailable without a remote call.
func buildHealthReport(ctx context.Context, aiService *ai.Service, provider string) healthReport {
	report := healthReport{
		AIAvailable:     aiService.Available(),
		Provider:        provider,
		CircuitBreakers: aiService.GetCircuitBreakerStats(),
	}
	if report.AIAvailable {
		report.Model = aiService.GetModelInfo(ctx)
	}
	return report
}
