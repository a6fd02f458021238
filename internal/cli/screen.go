package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"talentsift/internal/ai"
	"talentsift/internal/common"
	"talentsift/internal/errors"
	"talentsift/internal/extract"
	"talentsift/internal/scoring"
	"talentsift/internal/screening"
	"talentsift/internal/types"

	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen [resume-file] [job-spec-file]",
	Short: "Score a candidate resume against a job specification",
	Long: `Score a candidate resume against a job specification. The resume is plain
text; the job spec is a JSON file with title, description, requirements,
skills, and minExperienceYears fields.

When an AI API key is configured the analysis is AI-assisted. Without one, or
when the AI service fails, a deterministic rule-based scorer is used: skills
match (40%) weighted with experience match (60%).`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if screenConfig.OutputFormat == "" {
			screenConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(screenConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScreen,
}

var (
	screenConfig common.CommandConfig
	screenYears  int
)

func init() {
	screenCmd.Flags().StringVarP(&screenConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	screenCmd.Flags().StringVar(&screenConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	screenCmd.Flags().IntVar(&screenYears, "years", 0, "Candidate's years of experience (overrides the extracted value)")

	// Add completion for format flag
	_ = screenCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// screenInput bundles the raw resume text with the parsed job spec.
type screenInput struct {
	ResumeText string
	Job        types.JobRequirement
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}
	om := getObservabilityFromContext(cmd.Context())

	screenConfig.MaxFileSize = cfg.App.MaxFileSize

	aiService, err := ai.NewService(&cfg.AI, cfg.Screening.MaxPromptResumeChars, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.Warn("Failed to close AI service", "error", err)
		}
	}()

	scorer := scoring.NewScorer(cfg.Screening.SkillsWeight, cfg.Screening.ExperienceWeight)

	var metrics screening.MetricsRecorder
	if om != nil {
		metrics = om
	}
	orchestrator := screening.NewOrchestrator(aiService, scorer, metrics, logger)

	// Only treat --years as an override when the flag was actually set.
	var callerYears *int
	if cmd.Flags().Changed("years") {
		years := screenYears
		callerYears = &years
	}

	createInput := func(contents []string) (screenInput, error) {
		if len(contents) != 2 {
			return screenInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		job, err := parseJobSpec(contents[1])
		if err != nil {
			return screenInput{}, err
		}
		return screenInput{
			ResumeText: contents[0],
			Job:        job,
		}, nil
	}

	logDetails := func(input screenInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting candidate screening",
			"job_title", input.Job.Title,
			"resume_chars", len(input.ResumeText),
			"required_skills", len(input.Job.Skills),
			"ai_available", aiService.Available(),
			"output_format", cmdCfg.OutputFormat)
	}

	screenOperation := func(ctx context.Context, input screenInput) (types.ScreeningReport, error) {
		resume := extract.Extract(input.ResumeText)
		if om != nil {
			om.RecordResumeParsed(ctx, !resume.ExtractionFailed)
		}

		outcome := orchestrator.Analyze(ctx, resume, input.Job, callerYears)

		return types.ScreeningReport{
			JobTitle: input.Job.Title,
			Resume:   outcome.Resume,
			Result:   outcome.Result,
		}, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		screenConfig,
		args,
		createInput,
		screenOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to screen candidate: %w", err)
	}
	logger.Info("Candidate screening completed successfully")
	return nil
}

// parseJobSpec decodes and validates a job specification JSON document.
func parseJobSpec(data string) (types.JobRequirement, error) {
	var job types.JobRequirement
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return job, errors.NewValidationError(errors.ErrCodeInvalidJobSpec,
			"Job spec is not valid JSON", err)
	}

	if strings.TrimSpace(job.Title) == "" {
		return job, errors.NewValidationError(errors.ErrCodeInvalidJobSpec,
			"Job spec must include a title", nil)
	}
	if job.MinExperienceYears < 0 {
		return job, errors.NewValidationError(errors.ErrCodeInvalidJobSpec,
			"Minimum experience years must not be negative", nil)
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}

	return job, nil
}
