package evidence

import "github.com/jonathan/resume-matcher/internal/types"

// Thresholds below which a component earns a talent-facing suggestion, and
// the overall-score bands that set the recruiter-facing verdict.
const (
	lowSkillsThreshold     = 15
	lowExperienceThreshold = 10
	lowEducationThreshold  = 5
	weakOverallThreshold   = 60
	strongOverallThreshold = 80
)

// Recommend produces fixed-threshold improvement suggestions for the
// candidate and a one-line verdict for the recruiter.
func Recommend(components types.ComponentScores, overall int) types.Recommendations {
	rec := types.Recommendations{
		Talent:    []string{},
		Recruiter: []string{},
	}

	if components.SkillsMatch < lowSkillsThreshold {
		rec.Talent = append(rec.Talent, "Consider highlighting more relevant skills from the job description")
	}
	if components.ExperienceFit < lowExperienceThreshold {
		rec.Talent = append(rec.Talent, "Add more details about your experience and achievements")
	}
	if components.EducationMatch < lowEducationThreshold {
		rec.Talent = append(rec.Talent, "Emphasize your education if it meets the requirements")
	}

	switch {
	case overall < weakOverallThreshold:
		rec.Recruiter = append(rec.Recruiter, "Candidate may not meet all requirements")
	case overall > strongOverallThreshold:
		rec.Recruiter = append(rec.Recruiter, "Strong candidate worth considering")
	default:
		rec.Recruiter = append(rec.Recruiter, "Candidate meets basic requirements")
	}

	return rec
}
