// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirements is the structured form of a job description, either provided
// directly or extracted by the AI analyzer.
type JobRequirements struct {
	SkillsRequired        []string `json:"skills_required"`
	SkillsPreferred       []string `json:"skills_preferred"`
	RequirementsRequired  []string `json:"requirements_required"`
	RequirementsPreferred []string `json:"requirements_preferred"`
	Responsibilities      []string `json:"responsibilities"`
	MinYearsExperience    int      `json:"min_years_experience,omitempty"`
	DegreeRequirements    string   `json:"degree_requirements,omitempty"`
}
