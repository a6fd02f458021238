package scoring

import (
	"fmt"
	"math"
	"strings"

	"talentsift/internal/types"
)

// Default weighting of the two signal scores in the final score.
const (
	DefaultSkillsWeight     = 0.4
	DefaultExperienceWeight = 0.6
)

// Experience scoring constants. The surplus bonus is an internal signal
// only; the visible experience score never exceeds 100.
const (
	unknownExperienceScore = 50.0
	bonusPerSurplusYear    = 5.0
	maxSurplusBonus        = 20.0
)

// Scorer is the deterministic, rule-based scoring path. It is stateless and
// safe for concurrent use.
type Scorer struct {
	skillsWeight     float64
	experienceWeight float64
}

// NewScorer creates a scorer with the given weights.
func NewScorer(skillsWeight, experienceWeight float64) *Scorer {
	return &Scorer{
		skillsWeight:     skillsWeight,
		experienceWeight: experienceWeight,
	}
}

// NewDefaultScorer creates a scorer with the default 40/60 weighting.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultSkillsWeight, DefaultExperienceWeight)
}

// Score computes the weighted match score for one (resume, job) pairing.
// The result always has AIPowered set to false.
func (s *Scorer) Score(resume types.ParsedResume, job types.JobRequirement) types.ScoreResult {
	skillsScore, matched, missing := MatchSkills(resume.Skills, job.Skills)
	experienceScore := s.experienceScore(resume.YearsOfExperience, job.MinExperienceYears)

	finalScore := skillsScore*s.skillsWeight + experienceScore*s.experienceWeight

	return types.ScoreResult{
		FinalScore:      round2(finalScore),
		SkillsScore:     round2(skillsScore),
		ExperienceScore: round2(experienceScore),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Strengths:       []string{},
		Concerns:        []string{},
		Explanation:     buildExplanation(matched, missing, resume.YearsOfExperience, job.MinExperienceYears),
		AIPowered:       false,
	}
}

// experienceScore applies the experience policy: no requirement is a full
// score, unknown experience gets the benefit of the doubt, surplus earns a
// capped bonus, shortfall is penalized linearly.
func (s *Scorer) experienceScore(candidateYears *int, requiredYears int) float64 {
	if requiredYears <= 0 {
		return 100.0
	}
	if candidateYears == nil {
		return unknownExperienceScore
	}
	candidate := float64(*candidateYears)
	required := float64(requiredYears)
	if candidate >= required {
		bonus := math.Min((candidate-required)*bonusPerSurplusYear, maxSurplusBonus)
		return math.Min(100.0+bonus, 100.0)
	}
	return candidate / required * 100
}

// buildExplanation assembles a period-joined list of clauses describing the
// skill match and the experience comparison.
func buildExplanation(matched, missing []string, candidateYears *int, requiredYears int) string {
	var parts []string

	if len(matched) > 0 {
		parts = append(parts, "Matched skills: "+strings.Join(matched, ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "Missing skills: "+strings.Join(missing, ", "))
	}

	if candidateYears != nil {
		if *candidateYears >= requiredYears {
			parts = append(parts, fmt.Sprintf("Experience: %d years (meets %d+ requirement)", *candidateYears, requiredYears))
		} else {
			parts = append(parts, fmt.Sprintf("Experience: %d years (below %d years required)", *candidateYears, requiredYears))
		}
	} else {
		parts = append(parts, "Experience: Not specified in resume")
	}

	return strings.Join(parts, ". ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
