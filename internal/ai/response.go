package ai

import (
	"encoding/json"
	"strings"

	"talentsift/internal/errors"
	"talentsift/internal/types"
)

// ParseAnalysisResponse decodes the model's reply into an AnalysisResponse.
// Markdown code fences are stripped first: the response schema asks for bare
// JSON but models occasionally wrap it anyway. All three scores are clamped
// into [0, 100] and nil skill lists are replaced with empty slices.
func ParseAnalysisResponse(raw string) (types.AnalysisResponse, error) {
	var response types.AnalysisResponse

	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &response); err != nil {
		return response, errors.NewAIError(errors.ErrCodeAIResponseParse,
			"Failed to parse AI analysis response", err)
	}

	response.FinalScore = clampScore(response.FinalScore)
	response.SkillsScore = clampScore(response.SkillsScore)
	response.ExperienceScore = clampScore(response.ExperienceScore)

	if response.MatchedSkills == nil {
		response.MatchedSkills = []string{}
	}
	if response.MissingSkills == nil {
		response.MissingSkills = []string{}
	}
	if response.Strengths == nil {
		response.Strengths = []string{}
	}
	if response.Concerns == nil {
		response.Concerns = []string{}
	}

	return response, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag, leaving bare JSON text untouched.
func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimPrefix(text, "json")

	return strings.TrimSpace(text)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
