// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Component score caps. The penalty component is subtracted, not added.
const (
	MaxSkillsMatch        = 25
	MaxExperienceFit      = 20
	MaxEducationMatch     = 10
	MaxSemanticSimilarity = 40
	MaxPenalties          = 10
)

// ComponentScores holds the five weighted sub-scores of a match.
type ComponentScores struct {
	SkillsMatch        int `json:"skills_match"`
	ExperienceFit      int `json:"experience_fit"`
	EducationMatch     int `json:"education_match"`
	SemanticSimilarity int `json:"semantic_similarity"`
	Penalties          int `json:"penalties"`
}

// MatchedRequirement is an evidence record tying a job requirement to
// supporting resume snippets.
type MatchedRequirement struct {
	JDText          string   `json:"jd_text"`
	ResumeSnippets  []string `json:"resume_snippets"`
	SimilarityScore float64  `json:"similarity_score"`
}

// Evidence collects matched and missing requirements plus concerns for one match.
type Evidence struct {
	MatchedRequirements []MatchedRequirement `json:"matched_requirements"`
	MissingRequirements []string             `json:"missing_requirements"`
	Concerns            []string             `json:"concerns"`
}

// Recommendations holds improvement suggestions for the two audiences.
type Recommendations struct {
	Talent    []string `json:"talent"`
	Recruiter []string `json:"recruiter"`
}

// MatchScore is the full result of matching one resume against one job.
// A MatchScore is written once per (run, resume) pair and never mutated;
// re-analysis produces a new MatchScore.
type MatchScore struct {
	OverallScore    int             `json:"overall_score"`
	ComponentScores ComponentScores `json:"component_scores"`
	Evidence        Evidence        `json:"evidence"`
	Recommendations Recommendations `json:"recommendations"`
	Confidence      int             `json:"confidence"`
}

// SkillGap is the deterministic comparison of resume skills against job skills.
type SkillGap struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}
