package scoring

import (
	"slices"
	"strings"
	"testing"

	"talentsift/internal/types"
)

func intPtr(v int) *int { return &v }

func TestExperienceScore(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name           string
		candidateYears *int
		requiredYears  int
		expected       float64
	}{
		{name: "no requirement", candidateYears: nil, requiredYears: 0, expected: 100.0},
		{name: "negative requirement treated as none", candidateYears: intPtr(2), requiredYears: -1, expected: 100.0},
		{name: "unknown experience", candidateYears: nil, requiredYears: 5, expected: 50.0},
		{name: "exact requirement", candidateYears: intPtr(5), requiredYears: 5, expected: 100.0},
		{name: "surplus stays capped at 100", candidateYears: intPtr(20), requiredYears: 5, expected: 100.0},
		{name: "one of four years", candidateYears: intPtr(1), requiredYears: 4, expected: 25.0},
		{name: "three of five years", candidateYears: intPtr(3), requiredYears: 5, expected: 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.experienceScore(tt.candidateYears, tt.requiredYears); got != tt.expected {
				t.Errorf("experienceScore(%v, %d) = %v, want %v", tt.candidateYears, tt.requiredYears, got, tt.expected)
			}
		})
	}
}

func TestScore(t *testing.T) {
	scorer := NewDefaultScorer()

	resume := types.ParsedResume{
		Skills:            []string{"Python", "Django"},
		YearsOfExperience: intPtr(5),
	}
	job := types.JobRequirement{
		Title:              "Backend Engineer",
		Skills:             []string{"Python", "React"},
		MinExperienceYears: 3,
	}

	result := scorer.Score(resume, job)

	if result.SkillsScore != 50.0 {
		t.Errorf("SkillsScore = %v, want 50", result.SkillsScore)
	}
	if result.ExperienceScore != 100.0 {
		t.Errorf("ExperienceScore = %v, want 100", result.ExperienceScore)
	}
	if result.FinalScore != 80.0 {
		t.Errorf("FinalScore = %v, want 80", result.FinalScore)
	}
	if !slices.Equal(result.MatchedSkills, []string{"Python"}) {
		t.Errorf("MatchedSkills = %v, want [Python]", result.MatchedSkills)
	}
	if !slices.Equal(result.MissingSkills, []string{"React"}) {
		t.Errorf("MissingSkills = %v, want [React]", result.MissingSkills)
	}
	if result.AIPowered {
		t.Error("AIPowered = true for rule-based scoring")
	}
	if result.Strengths == nil || result.Concerns == nil {
		t.Error("Strengths and Concerns must be non-nil")
	}
}

func TestScoreWeights(t *testing.T) {
	// All skills matched, experience unknown against a requirement: the
	// weights alone decide the final score.
	scorer := NewScorer(0.5, 0.5)

	resume := types.ParsedResume{Skills: []string{"Go"}}
	job := types.JobRequirement{Title: "x", Skills: []string{"Go"}, MinExperienceYears: 3}

	result := scorer.Score(resume, job)
	if result.FinalScore != 75.0 {
		t.Errorf("FinalScore = %v, want 75 (0.5*100 + 0.5*50)", result.FinalScore)
	}
}

func TestScoreExplanation(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name     string
		resume   types.ParsedResume
		job      types.JobRequirement
		contains []string
	}{
		{
			name:   "meets requirement",
			resume: types.ParsedResume{Skills: []string{"Python"}, YearsOfExperience: intPtr(5)},
			job:    types.JobRequirement{Skills: []string{"Python", "React"}, MinExperienceYears: 3},
			contains: []string{
				"Matched skills: Python",
				"Missing skills: React",
				"Experience: 5 years (meets 3+ requirement)",
			},
		},
		{
			name:   "below requirement",
			resume: types.ParsedResume{Skills: []string{}, YearsOfExperience: intPtr(1)},
			job:    types.JobRequirement{Skills: []string{"Go"}, MinExperienceYears: 4},
			contains: []string{
				"Missing skills: Go",
				"Experience: 1 years (below 4 years required)",
			},
		},
		{
			name:     "years unknown",
			resume:   types.ParsedResume{Skills: []string{}},
			job:      types.JobRequirement{Skills: []string{}, MinExperienceYears: 2},
			contains: []string{"Experience: Not specified in resume"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.resume, tt.job)
			for _, want := range tt.contains {
				if !strings.Contains(result.Explanation, want) {
					t.Errorf("Explanation %q missing %q", result.Explanation, want)
				}
			}
		})
	}
}
