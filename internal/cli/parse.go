package cli

import (
	"context"
	"fmt"

	"talentsift/internal/common"
	"talentsift/internal/extract"
	"talentsift/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Extract structured fields from a resume",
	Long: `Extract structured fields from raw resume text: name, email, phone,
known skills, and years of experience. Extraction is heuristic and never
fails; fields that cannot be found are left empty.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}
	om := getObservabilityFromContext(cmd.Context())

	parseConfig.MaxFileSize = cfg.App.MaxFileSize

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(resumeText string, cmdCfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(resumeText),
			"output_format", cmdCfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, resumeText string) (types.ParsedResume, error) {
		resume := extract.Extract(resumeText)
		if om != nil {
			om.RecordResumeParsed(ctx, !resume.ExtractionFailed)
		}
		return resume, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}
