package ai

import (
	"fmt"
	"strings"

	"talentsift/internal/types"
)

// DefaultSystemPrompt is the system instruction for candidate analysis. The
// response schema already constrains the output shape; the prompt restates it
// because models follow instructions they can see more reliably.
const DefaultSystemPrompt = `You are an expert HR recruiter AI assistant. Analyze resumes against job requirements and provide objective scoring.

Always respond with valid JSON in this exact format:
{
    "final_score": <number 0-100>,
    "skills_score": <number 0-100>,
    "experience_score": <number 0-100>,
    "matched_skills": ["skill1", "skill2"],
    "missing_skills": ["skill1", "skill2"],
    "years_of_experience": <number or null>,
    "explanation": "Brief 2-3 sentence explanation of the score",
    "strengths": ["strength1", "strength2"],
    "concerns": ["concern1", "concern2"]
}`

// DefaultUserPromptTemplate is the analysis prompt template. Placeholders, in
// order: job title, description, requirements text, required skills list,
// minimum experience years, resume text.
const DefaultUserPromptTemplate = `Analyze this resume against the job requirements:

## JOB DETAILS
**Title:** %s
**Description:** %s
**Requirements:** %s
**Required Skills:** %s
**Minimum Experience:** %d years

## CANDIDATE RESUME
%s

## ANALYSIS INSTRUCTIONS
1. Extract the candidate's skills from the resume (look for explicit mentions and implied skills)
2. Determine years of experience (look for dates, explicit mentions, or estimate from career progression)
3. Compare skills against required skills (consider synonyms like React/React.js, PostgreSQL/Postgres)
4. Score skills match (0-100): percentage of required skills the candidate has
5. Score experience match (0-100): based on meeting/exceeding minimum years requirement
6. Calculate final score: weighted average (40%% skills, 60%% experience)
7. Identify strengths and potential concerns

Provide your analysis as JSON.`

const truncationMarker = "... [truncated]"

// BuildAnalysisPrompt formats the user prompt for one candidate analysis.
// Resume text longer than maxResumeChars is cut and marked so the model knows
// the document continues.
func BuildAnalysisPrompt(template string, input types.AnalyzeCandidateInput, maxResumeChars int) string {
	resumeText := truncateResume(input.ResumeText, maxResumeChars)

	jobTitle := input.Job.Title
	if jobTitle == "" {
		jobTitle = "Unknown Position"
	}

	requiredSkills := "Not specified"
	if len(input.Job.Skills) > 0 {
		requiredSkills = strings.Join(input.Job.Skills, ", ")
	}

	return fmt.Sprintf(template,
		jobTitle,
		input.Job.Description,
		input.Job.RequirementsText,
		requiredSkills,
		input.Job.MinExperienceYears,
		resumeText,
	)
}

// truncateResume cuts the resume to at most n characters and appends the
// truncation marker. Counting runes, not bytes, keeps a multi-byte character
// from being split at the cut.
func truncateResume(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + truncationMarker
}
