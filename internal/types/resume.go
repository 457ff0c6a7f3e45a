// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StructuredResume is the structured form of a raw resume text. It is derived
// deterministically from the text and can always be re-derived; once produced
// it is treated as immutable.
type StructuredResume struct {
	ContactInfo       ContactInfo             `json:"contact_info"`
	Sections          map[string]SectionRange `json:"sections"`
	SectionIndex      map[string]SectionStats `json:"section_index"`
	Skills            []string                `json:"skills"`
	EmploymentHistory []JobEntry              `json:"employment_history"`
	Education         []EducationEntry        `json:"education"`
	Certifications    []Certification         `json:"certifications"`
	Companies         []string                `json:"companies"`
	TitlesNormalized  []string                `json:"titles_normalized"`
	Summary           string                  `json:"summary,omitempty"`
	Projects          string                  `json:"projects,omitempty"`
	QualityFlags      QualityAssessment       `json:"quality_flags"`
}

// ContactInfo holds extracted contact fields. Missing fields are empty strings.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// SectionRange is the line span of a detected section within the source text.
// EndLine always runs to the last line of the text; explicit next-section
// boundary detection is a known limitation of the section detector.
type SectionRange struct {
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// SectionStats summarizes a detected section for the section index.
type SectionStats struct {
	StartLine      int `json:"start_line"`
	EndLine        int `json:"end_line"`
	CharacterCount int `json:"character_count"`
}

// JobEntry is one employment history entry.
// StartDate/EndDate are ISO dates ("2006-01-02") or empty; an empty EndDate
// means the position is ongoing.
type JobEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Dates       string   `json:"dates"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// EducationEntry is one education history entry.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
	Details     string `json:"details"`
}

// Certification is a single certification line.
type Certification struct {
	Name string `json:"name"`
}

// QualityAssessment reports extraction completeness. Flags describe defects in
// the extraction, not in the candidate.
type QualityAssessment struct {
	Score        int          `json:"score"`
	Flags        QualityFlags `json:"flags"`
	Completeness int          `json:"completeness"`
}

// QualityFlags are boolean defect indicators set by the quality assessor.
type QualityFlags struct {
	MissingExperience bool `json:"missing_experience,omitempty"`
	MissingEducation  bool `json:"missing_education,omitempty"`
	MissingSkills     bool `json:"missing_skills,omitempty"`
	MissingDates      bool `json:"missing_dates,omitempty"`
	TooShort          bool `json:"too_short,omitempty"`
	TooLong           bool `json:"too_long,omitempty"`
	MissingEmail      bool `json:"missing_email,omitempty"`
}
