package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// PenaltiesScore sums fixed deductions for raised quality flags (0-10).
// Missing experience weighs heaviest; formatting issues weigh least.
func PenaltiesScore(quality types.QualityAssessment) int {
	flags := quality.Flags

	penalties := 0
	if flags.MissingExperience {
		penalties += 3
	}
	if flags.MissingEducation {
		penalties += 2
	}
	if flags.MissingSkills {
		penalties += 2
	}
	if flags.TooShort {
		penalties += 2
	}
	if flags.TooLong {
		penalties += 1
	}
	if flags.MissingEmail {
		penalties += 1
	}

	if penalties > types.MaxPenalties {
		penalties = types.MaxPenalties
	}
	return penalties
}
