package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"talentsift/internal/types"
)

func sampleReport() types.ScreeningReport {
	return types.ScreeningReport{
		JobTitle: "Backend Engineer",
		Resume:   types.ParsedResume{Name: "Jane Doe", Skills: []string{"Python"}},
		Result: types.ScoreResult{
			FinalScore:      80,
			SkillsScore:     50,
			ExperienceScore: 100,
			MatchedSkills:   []string{"Python"},
			MissingSkills:   []string{"React"},
			Strengths:       []string{},
			Concerns:        []string{},
			Explanation:     "Matched skills: Python",
			AIPowered:       false,
		},
	}
}

func TestFormatJSON(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleReport(), "json")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["jobTitle"] != "Backend Engineer" {
		t.Errorf("jobTitle = %v", decoded["jobTitle"])
	}
}

func TestFormatScreeningText(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	for _, want := range []string{
		"Job: Backend Engineer",
		"Candidate: Jane Doe",
		"Scoring Mode: rule-based",
		"Final Score: 80.00/100",
		"- React",
		"Matched skills: Python",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatScreeningMarkdown(t *testing.T) {
	registry := NewFormatterRegistry()

	report := sampleReport()
	report.Result.AIPowered = true
	output, err := registry.Format(report, "markdown")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	for _, want := range []string{
		"# Screening Result",
		"**Scoring Mode:** AI-assisted",
		"## Missing Skills",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestFormatParsedResume(t *testing.T) {
	registry := NewFormatterRegistry()

	years := 5
	resume := types.ParsedResume{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Skills:            []string{"Go", "Python"},
		YearsOfExperience: &years,
	}

	output, err := registry.Format(resume, "text")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	for _, want := range []string{"Name: Jane Doe", "Phone: -", "Years of Experience: 5", "- Go"} {
		if !strings.Contains(output, want) {
			t.Errorf("resume output missing %q", want)
		}
	}
}

func TestFormatFailedExtraction(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(types.ParsedResume{ExtractionFailed: true}, "text")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(output, "Extraction failed") {
		t.Errorf("output missing extraction failure notice: %q", output)
	}
}

func TestFormatFallsBackToGeneric(t *testing.T) {
	registry := NewFormatterRegistry()

	// Unregistered data types format as JSON through the "any" entry.
	output, err := registry.Format(map[string]string{"key": "value"}, "json")
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(output, `"key": "value"`) {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(sampleReport(), "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
