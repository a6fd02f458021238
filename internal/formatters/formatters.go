package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"talentsift/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScreeningReport", &ScreeningTextFormatter{})
	registry.RegisterFormatter("markdown", "ScreeningReport", &ScreeningMarkdownFormatter{})
	registry.RegisterFormatter("text", "ParsedResume", &ResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "ParsedResume", &ResumeMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScreeningReport:
		return "ScreeningReport"
	case types.ParsedResume:
		return "ParsedResume"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScreeningTextFormatter handles text formatting for screening reports
type ScreeningTextFormatter struct{}

func (stf *ScreeningTextFormatter) Format(data any) (string, error) {
	report, ok := data.(types.ScreeningReport)
	if !ok {
		return "", fmt.Errorf("expected ScreeningReport, got %T", data)
	}

	result := report.Result
	var output strings.Builder

	output.WriteString("=== SCREENING RESULT ===\n\n")
	if report.JobTitle != "" {
		output.WriteString(fmt.Sprintf("Job: %s\n", report.JobTitle))
	}
	if report.Resume.Name != "" {
		output.WriteString(fmt.Sprintf("Candidate: %s\n", report.Resume.Name))
	}
	output.WriteString(fmt.Sprintf("Scoring Mode: %s\n\n", scoringMode(result.AIPowered)))

	output.WriteString(fmt.Sprintf("Final Score: %.2f/100\n", result.FinalScore))
	output.WriteString(fmt.Sprintf("Skills Score: %.2f/100\n", result.SkillsScore))
	output.WriteString(fmt.Sprintf("Experience Score: %.2f/100\n\n", result.ExperienceScore))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("Matched Skills:\n")
		for _, skill := range result.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}
	if len(result.Concerns) > 0 {
		output.WriteString("Concerns:\n")
		for _, concern := range result.Concerns {
			output.WriteString(fmt.Sprintf("- %s\n", concern))
		}
		output.WriteString("\n")
	}

	output.WriteString("Explanation:\n")
	output.WriteString(result.Explanation)
	output.WriteString("\n")

	return output.String(), nil
}

func (stf *ScreeningTextFormatter) SupportedType() string {
	return "ScreeningReport"
}

// ScreeningMarkdownFormatter handles markdown formatting for screening reports
type ScreeningMarkdownFormatter struct{}

func (smf *ScreeningMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(types.ScreeningReport)
	if !ok {
		return "", fmt.Errorf("expected ScreeningReport, got %T", data)
	}

	result := report.Result
	var output strings.Builder

	output.WriteString("# Screening Result\n\n")
	if report.JobTitle != "" {
		output.WriteString(fmt.Sprintf("**Job:** %s\n\n", report.JobTitle))
	}
	if report.Resume.Name != "" {
		output.WriteString(fmt.Sprintf("**Candidate:** %s\n\n", report.Resume.Name))
	}
	output.WriteString(fmt.Sprintf("**Scoring Mode:** %s\n\n", scoringMode(result.AIPowered)))

	output.WriteString("## Scores\n\n")
	output.WriteString(fmt.Sprintf("**Final Score:** %.2f/100\n\n", result.FinalScore))
	output.WriteString(fmt.Sprintf("**Skills Score:** %.2f/100\n\n", result.SkillsScore))
	output.WriteString(fmt.Sprintf("**Experience Score:** %.2f/100\n\n", result.ExperienceScore))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("## Matched Skills\n")
		for _, skill := range result.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}
	if len(result.Concerns) > 0 {
		output.WriteString("## Concerns\n")
		for _, concern := range result.Concerns {
			output.WriteString(fmt.Sprintf("- %s\n", concern))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Explanation\n\n")
	output.WriteString(result.Explanation)
	output.WriteString("\n")

	return output.String(), nil
}

func (smf *ScreeningMarkdownFormatter) SupportedType() string {
	return "ScreeningReport"
}

// ResumeTextFormatter handles text formatting for parsed resumes
type ResumeTextFormatter struct{}

func (rtf *ResumeTextFormatter) Format(data any) (string, error) {
	resume, ok := data.(types.ParsedResume)
	if !ok {
		return "", fmt.Errorf("expected ParsedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PARSED RESUME ===\n\n")
	if resume.ExtractionFailed {
		output.WriteString("Extraction failed: resume text was empty.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("Name: %s\n", orDash(resume.Name)))
	output.WriteString(fmt.Sprintf("Email: %s\n", orDash(resume.Email)))
	output.WriteString(fmt.Sprintf("Phone: %s\n", orDash(resume.Phone)))
	if resume.YearsOfExperience != nil {
		output.WriteString(fmt.Sprintf("Years of Experience: %d\n", *resume.YearsOfExperience))
	} else {
		output.WriteString("Years of Experience: not found\n")
	}
	output.WriteString("\n")

	if len(resume.Skills) > 0 {
		output.WriteString("Skills:\n")
		for _, skill := range resume.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	} else {
		output.WriteString("No known skills found.\n")
	}

	return output.String(), nil
}

func (rtf *ResumeTextFormatter) SupportedType() string {
	return "ParsedResume"
}

// ResumeMarkdownFormatter handles markdown formatting for parsed resumes
type ResumeMarkdownFormatter struct{}

func (rmf *ResumeMarkdownFormatter) Format(data any) (string, error) {
	resume, ok := data.(types.ParsedResume)
	if !ok {
		return "", fmt.Errorf("expected ParsedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Parsed Resume\n\n")
	if resume.ExtractionFailed {
		output.WriteString("Extraction failed: resume text was empty.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("**Name:** %s\n\n", orDash(resume.Name)))
	output.WriteString(fmt.Sprintf("**Email:** %s\n\n", orDash(resume.Email)))
	output.WriteString(fmt.Sprintf("**Phone:** %s\n\n", orDash(resume.Phone)))
	if resume.YearsOfExperience != nil {
		output.WriteString(fmt.Sprintf("**Years of Experience:** %d\n\n", *resume.YearsOfExperience))
	} else {
		output.WriteString("**Years of Experience:** not found\n\n")
	}

	if len(resume.Skills) > 0 {
		output.WriteString("## Skills\n")
		for _, skill := range resume.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
	} else {
		output.WriteString("No known skills found.\n")
	}

	return output.String(), nil
}

func (rmf *ResumeMarkdownFormatter) SupportedType() string {
	return "ParsedResume"
}

func scoringMode(aiPowered bool) string {
	if aiPowered {
		return "AI-assisted"
	}
	return "rule-based"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
