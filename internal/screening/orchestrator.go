package screening

import (
	"context"
	"strings"
	"time"

	"talentsift/internal/ai"
	"talentsift/internal/errors"
	"talentsift/internal/scoring"
	"talentsift/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// MetricsRecorder receives screening outcome metrics. A nil recorder is valid
// and means metrics are disabled.
type MetricsRecorder interface {
	RecordAnalysis(ctx context.Context, aiPowered, fellBack bool, finalScore float64, duration time.Duration)
	RecordTokenUsage(ctx context.Context, inputTokens, outputTokens, totalTokens int64)
}

// Analyzer is the AI-assisted analysis dependency. *ai.Service satisfies it.
type Analyzer interface {
	Available() bool
	AnalyzeCandidate(ctx context.Context, input types.AnalyzeCandidateInput) (types.AnalysisResponse, *ai.TokenUsage, error)
}

// Orchestrator runs one screening analysis end to end: it decides between the
// AI-assisted and deterministic paths and guarantees a usable ScoreResult
// either way. AI trouble is never surfaced as an error to the caller.
type Orchestrator struct {
	aiService Analyzer
	scorer    *scoring.Scorer
	metrics   MetricsRecorder
	logger    *errors.Logger
}

// NewOrchestrator creates a screening orchestrator. aiService and metrics may
// be nil; the deterministic path needs neither.
func NewOrchestrator(aiService Analyzer, scorer *scoring.Scorer, metrics MetricsRecorder, logger *errors.Logger) *Orchestrator {
	return &Orchestrator{
		aiService: aiService,
		scorer:    scorer,
		metrics:   metrics,
		logger:    logger,
	}
}

// Outcome bundles the score with the resume as seen by scoring: the caller's
// years override, or years the AI inferred, are reflected here.
type Outcome struct {
	Result types.ScoreResult
	Resume types.ParsedResume
}

// Analyze scores one resume against one job. A caller-supplied years value
// takes precedence over the extracted one before either path runs. The AI
// path is attempted only when the service is available and the resume has
// non-blank text; any AI failure falls back to the deterministic scorer.
func (o *Orchestrator) Analyze(ctx context.Context, resume types.ParsedResume, job types.JobRequirement, callerYears *int) Outcome {
	tracer := otel.Tracer("talentsift.screening")
	ctx, span := tracer.Start(ctx, "screening.analyze")
	defer span.End()

	start := time.Now()

	if callerYears != nil {
		years := *callerYears
		resume.YearsOfExperience = &years
	}

	useAI := o.aiService != nil && o.aiService.Available() && strings.TrimSpace(resume.RawText) != ""
	span.SetAttributes(attribute.Bool("screening.ai_attempted", useAI))

	var result types.ScoreResult
	fellBack := false

	if useAI {
		result, resume, fellBack = o.analyzeWithAI(ctx, resume, job, callerYears)
	} else {
		result = o.scorer.Score(resume, job)
	}

	duration := time.Since(start)
	span.SetAttributes(
		attribute.Bool("screening.ai_powered", result.AIPowered),
		attribute.Bool("screening.fell_back", fellBack),
		attribute.Float64("screening.final_score", result.FinalScore),
	)

	if o.metrics != nil {
		o.metrics.RecordAnalysis(ctx, result.AIPowered, fellBack, result.FinalScore, duration)
	}

	return Outcome{Result: result, Resume: resume}
}

// analyzeWithAI runs the AI path and converts its reply into a ScoreResult.
// On any failure it returns the deterministic result with a fallback note
// appended, never an error.
func (o *Orchestrator) analyzeWithAI(ctx context.Context, resume types.ParsedResume, job types.JobRequirement, callerYears *int) (types.ScoreResult, types.ParsedResume, bool) {
	response, tokenUsage, err := o.aiService.AnalyzeCandidate(ctx, types.AnalyzeCandidateInput{
		ResumeText: resume.RawText,
		Job:        job,
	})
	if err != nil {
		o.logger.Warn("AI analysis failed, falling back to rule-based scoring",
			"job_title", job.Title,
			"error", err.Error())

		result := o.scorer.Score(resume, job)
		result.Explanation = appendFallbackNote(result.Explanation)
		result.Concerns = append(result.Concerns, "AI analysis unavailable")
		return result, resume, true
	}

	if o.metrics != nil && tokenUsage != nil {
		o.metrics.RecordTokenUsage(ctx, tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
	}

	// Adopt the AI-inferred experience only when the caller did not override.
	if callerYears == nil && response.YearsOfExperience != nil {
		years := *response.YearsOfExperience
		resume.YearsOfExperience = &years
	}

	matched, missing := repairPartition(job.Skills, response.MatchedSkills)

	return types.ScoreResult{
		FinalScore:      response.FinalScore,
		SkillsScore:     response.SkillsScore,
		ExperienceScore: response.ExperienceScore,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Strengths:       response.Strengths,
		Concerns:        response.Concerns,
		Explanation:     response.Explanation,
		AIPowered:       true,
	}, resume, false
}

// repairPartition re-derives the matched/missing split from the job's own
// skill list so the two always partition it exactly, whatever the model
// returned. Matching is canonical and case-insensitive; output keeps the
// job's order and casing.
func repairPartition(jobSkills, aiMatched []string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}

	matchedSet := make(map[string]struct{}, len(aiMatched))
	for _, skill := range aiMatched {
		matchedSet[scoring.Normalize(skill)] = struct{}{}
	}

	for _, skill := range jobSkills {
		if _, ok := matchedSet[scoring.Normalize(skill)]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

const fallbackNote = "AI analysis not available"

func appendFallbackNote(explanation string) string {
	if explanation == "" {
		return fallbackNote
	}
	return explanation + ". " + fallbackNote
}
