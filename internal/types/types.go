package types

// MaxStoredTextLength bounds ParsedResume.RawText for storage economy.
const MaxStoredTextLength = 5000

// ParsedResume holds the structured fields extracted from raw resume text.
// It is built once per submitted resume and never mutated afterwards.
type ParsedResume struct {
	// RawText is the resume text truncated to MaxStoredTextLength characters.
	RawText string `json:"rawText"`
	// Email is the first email-like token found, empty if none.
	Email string `json:"email,omitempty"`
	// Phone is the first plausible phone-number token found, empty if none.
	Phone string `json:"phone,omitempty"`
	// Name is a best-effort guess from the first lines of the resume.
	// Advisory only, never a validated identity field.
	Name string `json:"name,omitempty"`
	// Skills is the deduplicated set of vocabulary terms found in the text,
	// surfaced in the vocabulary's canonical casing.
	Skills []string `json:"skills"`
	// YearsOfExperience is nil when no years phrase was found.
	YearsOfExperience *int `json:"yearsOfExperience,omitempty"`
	// ExtractionFailed marks a resume whose text was empty or whitespace-only.
	// All optional fields are unset in that case.
	ExtractionFailed bool `json:"extractionFailed,omitempty"`
}

// JobRequirement describes what a job asks for. Skills order is priority
// for display only; MinExperienceYears of 0 means no requirement.
type JobRequirement struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	RequirementsText   string   `json:"requirements"`
	Skills             []string `json:"skills"`
	MinExperienceYears int      `json:"minExperienceYears"`
}

// ScoreResult is the unified outcome of scoring one (resume, job) pairing,
// regardless of which path produced it. MatchedSkills and MissingSkills
// partition the job's required-skill list exactly, preserving input order
// and original casing.
type ScoreResult struct {
	FinalScore      float64  `json:"finalScore"`
	SkillsScore     float64  `json:"skillsScore"`
	ExperienceScore float64  `json:"experienceScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
	Explanation     string   `json:"explanation"`
	// AIPowered is true only when the remote analysis succeeded end-to-end.
	AIPowered bool `json:"aiPowered"`
}

// ScreeningReport is the full outcome of screening one candidate against one
// job, as presented to the collaborator surface.
type ScreeningReport struct {
	JobTitle string       `json:"jobTitle"`
	Resume   ParsedResume `json:"resume"`
	Result   ScoreResult  `json:"result"`
}

// AnalyzeCandidateInput is the input for the AI-assisted analysis call.
type AnalyzeCandidateInput struct {
	ResumeText string         `json:"resumeText"`
	Job        JobRequirement `json:"job"`
}

// AnalysisResponse is the structured reply expected from the remote AI
// service. YearsOfExperience is nil when the model could not infer it.
type AnalysisResponse struct {
	FinalScore        float64  `json:"final_score"`
	SkillsScore       float64  `json:"skills_score"`
	ExperienceScore   float64  `json:"experience_score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	YearsOfExperience *int     `json:"years_of_experience"`
	Explanation       string   `json:"explanation"`
	Strengths         []string `json:"strengths"`
	Concerns          []string `json:"concerns"`
}
