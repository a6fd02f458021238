package screening

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"talentsift/internal/ai"
	"talentsift/internal/errors"
	"talentsift/internal/scoring"
	"talentsift/internal/types"
)

type fakeAnalyzer struct {
	available bool
	response  types.AnalysisResponse
	usage     *ai.TokenUsage
	err       error
	calls     int
}

func (f *fakeAnalyzer) Available() bool { return f.available }

func (f *fakeAnalyzer) AnalyzeCandidate(_ context.Context, _ types.AnalyzeCandidateInput) (types.AnalysisResponse, *ai.TokenUsage, error) {
	f.calls++
	return f.response, f.usage, f.err
}

type fakeMetrics struct {
	analyses   int
	aiPowered  bool
	fellBack   bool
	finalScore float64
	tokenCalls int
}

func (f *fakeMetrics) RecordAnalysis(_ context.Context, aiPowered, fellBack bool, finalScore float64, _ time.Duration) {
	f.analyses++
	f.aiPowered = aiPowered
	f.fellBack = fellBack
	f.finalScore = finalScore
}

func (f *fakeMetrics) RecordTokenUsage(_ context.Context, _, _, _ int64) {
	f.tokenCalls++
}

func testLogger() *errors.Logger {
	return errors.NewLogger(slog.LevelError)
}

func intPtr(v int) *int { return &v }

func testJob() types.JobRequirement {
	return types.JobRequirement{
		Title:              "Backend Engineer",
		Skills:             []string{"Python", "React"},
		MinExperienceYears: 3,
	}
}

func testResume() types.ParsedResume {
	return types.ParsedResume{
		RawText:           "Jane Doe. 5 years of experience with Python and Django.",
		Skills:            []string{"Python", "Django"},
		YearsOfExperience: intPtr(5),
	}
}

func TestAnalyzeAISuccess(t *testing.T) {
	analyzer := &fakeAnalyzer{
		available: true,
		response: types.AnalysisResponse{
			FinalScore:      88,
			SkillsScore:     80,
			ExperienceScore: 95,
			MatchedSkills:   []string{"python"},
			MissingSkills:   []string{},
			Explanation:     "Strong match.",
			Strengths:       []string{"Backend depth"},
			Concerns:        []string{},
		},
		usage: &ai.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
	metrics := &fakeMetrics{}
	o := NewOrchestrator(analyzer, scoring.NewDefaultScorer(), metrics, testLogger())

	outcome := o.Analyze(context.Background(), testResume(), testJob(), nil)

	if analyzer.calls != 1 {
		t.Fatalf("analyzer calls = %d, want 1", analyzer.calls)
	}
	if !outcome.Result.AIPowered {
		t.Error("AIPowered = false, want true")
	}
	if outcome.Result.FinalScore != 88 {
		t.Errorf("FinalScore = %v, want 88", outcome.Result.FinalScore)
	}
	// The matched/missing split is re-derived from the job's skill list, with
	// the job's casing, whatever the model returned.
	if !slices.Equal(outcome.Result.MatchedSkills, []string{"Python"}) {
		t.Errorf("MatchedSkills = %v, want [Python]", outcome.Result.MatchedSkills)
	}
	if !slices.Equal(outcome.Result.MissingSkills, []string{"React"}) {
		t.Errorf("MissingSkills = %v, want [React]", outcome.Result.MissingSkills)
	}
	if strings.Contains(outcome.Result.Explanation, fallbackNote) {
		t.Error("fallback note present on the AI path")
	}
	if metrics.analyses != 1 || !metrics.aiPowered || metrics.fellBack {
		t.Errorf("metrics = %+v, want one AI-powered analysis without fallback", metrics)
	}
	if metrics.tokenCalls != 1 {
		t.Errorf("token usage recorded %d times, want 1", metrics.tokenCalls)
	}
}

func TestAnalyzeAIFailureFallsBack(t *testing.T) {
	analyzer := &fakeAnalyzer{
		available: true,
		err:       errors.NewAIError(errors.ErrCodeAIServiceFailed, "model unavailable", nil),
	}
	metrics := &fakeMetrics{}
	o := NewOrchestrator(analyzer, scoring.NewDefaultScorer(), metrics, testLogger())

	outcome := o.Analyze(context.Background(), testResume(), testJob(), nil)

	if analyzer.calls != 1 {
		t.Fatalf("analyzer calls = %d, want 1", analyzer.calls)
	}
	if outcome.Result.AIPowered {
		t.Error("AIPowered = true after fallback")
	}
	if outcome.Result.FinalScore != 80.0 {
		t.Errorf("FinalScore = %v, want 80 (rule-based)", outcome.Result.FinalScore)
	}
	if !strings.HasSuffix(outcome.Result.Explanation, fallbackNote) {
		t.Errorf("Explanation %q does not end with the fallback note", outcome.Result.Explanation)
	}
	if !slices.Contains(outcome.Result.Concerns, "AI analysis unavailable") {
		t.Errorf("Concerns = %v, missing fallback concern", outcome.Result.Concerns)
	}
	if !metrics.fellBack || metrics.aiPowered {
		t.Errorf("metrics = %+v, want a recorded fallback", metrics)
	}
}

func TestAnalyzeUnavailableServiceSkipsAI(t *testing.T) {
	analyzer := &fakeAnalyzer{available: false}
	o := NewOrchestrator(analyzer, scoring.NewDefaultScorer(), nil, testLogger())

	outcome := o.Analyze(context.Background(), testResume(), testJob(), nil)

	if analyzer.calls != 0 {
		t.Errorf("analyzer calls = %d, want 0", analyzer.calls)
	}
	if outcome.Result.AIPowered {
		t.Error("AIPowered = true without AI")
	}
	// Deterministic-only runs never carry the fallback note.
	if strings.Contains(outcome.Result.Explanation, fallbackNote) {
		t.Error("fallback note present without an attempted AI call")
	}
}

func TestAnalyzeNilServiceUsesScorer(t *testing.T) {
	o := NewOrchestrator(nil, scoring.NewDefaultScorer(), nil, testLogger())

	outcome := o.Analyze(context.Background(), testResume(), testJob(), nil)

	if outcome.Result.AIPowered {
		t.Error("AIPowered = true without AI")
	}
	if outcome.Result.FinalScore != 80.0 {
		t.Errorf("FinalScore = %v, want 80", outcome.Result.FinalScore)
	}
}

func TestAnalyzeBlankResumeSkipsAI(t *testing.T) {
	analyzer := &fakeAnalyzer{available: true}
	o := NewOrchestrator(analyzer, scoring.NewDefaultScorer(), nil, testLogger())

	resume := types.ParsedResume{RawText: "   \n\t ", Skills: []string{}}
	o.Analyze(context.Background(), resume, testJob(), nil)

	if analyzer.calls != 0 {
		t.Errorf("analyzer calls = %d, want 0 for blank resume text", analyzer.calls)
	}
}

func TestAnalyzeCallerYearsOverride(t *testing.T) {
	// The caller's value replaces the extracted one before scoring and is not
	// displaced by an AI-inferred value.
	analyzer := &fakeAnalyzer{
		available: true,
		response: types.AnalysisResponse{
			FinalScore:        70,
			YearsOfExperience: intPtr(10),
			MatchedSkills:     []string{},
		},
	}
	o := NewOrchestrator(analyzer, scoring.NewDefaultScorer(), nil, testLogger())

	resume := testResume() // extracted 5 years
	outcome := o.Analyze(context.Background(), resume, testJob(), intPtr(2))

	if outcome.Resume.YearsOfExperience == nil || *outcome.Resume.YearsOfExperience != 2 {
		t.Errorf("Resume.YearsOfExperience = %v, want caller-supplied 2", outcome.Resume.YearsOfExperience)
	}
}

func TestAnalyzeAdoptsAIInferredYears(t *testing.T) {
	analyzer := &fakeAnalyzer{
		available: true,
		response: types.AnalysisResponse{
			FinalScore:        70,
			YearsOfExperience: intPtr(7),
			MatchedSkills:     []string{},
		},
	}
	o := NewOrchestrator(analyzer, scoring.NewDefaultScorer(), nil, testLogger())

	resume := testResume()
	resume.YearsOfExperience = nil
	outcome := o.Analyze(context.Background(), resume, testJob(), nil)

	if outcome.Resume.YearsOfExperience == nil || *outcome.Resume.YearsOfExperience != 7 {
		t.Errorf("Resume.YearsOfExperience = %v, want AI-inferred 7", outcome.Resume.YearsOfExperience)
	}
}

func TestRepairPartition(t *testing.T) {
	tests := []struct {
		name        string
		jobSkills   []string
		aiMatched   []string
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "case insensitive against job casing",
			jobSkills:   []string{"Python", "React"},
			aiMatched:   []string{"python"},
			wantMatched: []string{"Python"},
			wantMissing: []string{"React"},
		},
		{
			name:        "hallucinated skills dropped",
			jobSkills:   []string{"Go"},
			aiMatched:   []string{"Go", "Fortran"},
			wantMatched: []string{"Go"},
			wantMissing: []string{},
		},
		{
			name:        "synonyms resolve",
			jobSkills:   []string{"Kubernetes"},
			aiMatched:   []string{"k8s"},
			wantMatched: []string{"Kubernetes"},
			wantMissing: []string{},
		},
		{
			name:        "empty model reply",
			jobSkills:   []string{"Python"},
			aiMatched:   nil,
			wantMatched: []string{},
			wantMissing: []string{"Python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, missing := repairPartition(tt.jobSkills, tt.aiMatched)
			if !slices.Equal(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
			if !slices.Equal(missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}
