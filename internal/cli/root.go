package cli

import (
	"context"
	"fmt"

	"talentsift/internal/config"
	"talentsift/internal/errors"
	"talentsift/internal/observability"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}
type obsKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}
var obsKey = obsKeyType{}

var rootCmd = &cobra.Command{
	Use:   "talentsift",
	Short: "A CLI tool for screening candidate resumes against job requirements",
	Long: `TalentSift scores candidate resumes against job requirements. It extracts
contact details, skills, and experience from raw resume text, then scores the
candidate with an AI-assisted analysis when configured, falling back to a
deterministic rule-based scorer otherwise.`,
}

// Execute runs the root command with config, logger, and observability
// attached to the context for all subcommands.
func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger, om *observability.ObservabilityManager) error {
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	ctx = context.WithValue(ctx, obsKey, om)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg, nil
	}
	return nil, fmt.Errorf("config not found in context")
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) (*errors.Logger, error) {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger, nil
	}
	return nil, fmt.Errorf("logger not found in context")
}

// getObservabilityFromContext returns the observability manager, which may be
// nil when observability is disabled.
func getObservabilityFromContext(ctx context.Context) *observability.ObservabilityManager {
	if om, ok := ctx.Value(obsKey).(*observability.ObservabilityManager); ok {
		return om
	}
	return nil
}

func init() {
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}
