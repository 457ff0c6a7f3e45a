package structurer

import "github.com/jonathan/resume-matcher/internal/types"

// Fixed penalties subtracted from the quality score.
const (
	penaltyMissingSection = 20
	penaltyMissingDates   = 15
	penaltyTooShort       = 25
	penaltyTooLong        = 10
	penaltyMissingEmail   = 10

	minResumeChars = 500
	maxResumeChars = 10000
)

// AssessQuality scores extraction completeness 0-100 and flags defects.
// The score starts at 100 and floors at 0; completeness is its complement.
// Empty input yields an all-flags-missing assessment rather than an error.
func AssessQuality(text string, resume *types.StructuredResume) types.QualityAssessment {
	score := 100
	var flags types.QualityFlags

	if len(resume.EmploymentHistory) == 0 {
		flags.MissingExperience = true
		score -= penaltyMissingSection
	}
	if len(resume.Education) == 0 {
		flags.MissingEducation = true
		score -= penaltyMissingSection
	}
	if len(resume.Skills) == 0 {
		flags.MissingSkills = true
		score -= penaltyMissingSection
	}

	hasDates := false
	for _, job := range resume.EmploymentHistory {
		if job.StartDate != "" {
			hasDates = true
			break
		}
	}
	if !hasDates {
		flags.MissingDates = true
		score -= penaltyMissingDates
	}

	if len(text) < minResumeChars {
		flags.TooShort = true
		score -= penaltyTooShort
	} else if len(text) > maxResumeChars {
		flags.TooLong = true
		score -= penaltyTooLong
	}

	if resume.ContactInfo.Email == "" {
		flags.MissingEmail = true
		score -= penaltyMissingEmail
	}

	if score < 0 {
		score = 0
	}

	return types.QualityAssessment{
		Score:        score,
		Flags:        flags,
		Completeness: 100 - score,
	}
}
