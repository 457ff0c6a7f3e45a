// Package evidence derives human-readable supporting evidence,
// recommendations, and skill gap summaries from a scored match. Everything
// here is deterministic threshold and lookup logic over structured data.
package evidence

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// topJobsForEvidence caps how many employment entries become evidence records.
const topJobsForEvidence = 3

// Build collects matched and missing requirement records for one match.
// Skill matches get a synthetic snippet at full similarity. The most recent
// employment entries are always included as coverage evidence at a reduced
// similarity, whether or not they relate to the job. Concerns come straight
// from the resume's quality flags.
func Build(resume *types.StructuredResume, requiredSkills []string) types.Evidence {
	ev := types.Evidence{
		MatchedRequirements: []types.MatchedRequirement{},
		MissingRequirements: []string{},
		Concerns:            []string{},
	}

	have := make(map[string]bool, len(resume.Skills))
	for _, s := range resume.Skills {
		have[strings.ToLower(s)] = true
	}

	for _, skill := range requiredSkills {
		lower := strings.ToLower(skill)
		if have[lower] {
			ev.MatchedRequirements = append(ev.MatchedRequirements, types.MatchedRequirement{
				JDText:          lower,
				ResumeSnippets:  []string{fmt.Sprintf("Proficient in %s", lower)},
				SimilarityScore: 1.0,
			})
		} else {
			ev.MissingRequirements = append(ev.MissingRequirements, lower)
		}
	}

	jobs := resume.EmploymentHistory
	if len(jobs) > topJobsForEvidence {
		jobs = jobs[:topJobsForEvidence]
	}
	for _, job := range jobs {
		ev.MatchedRequirements = append(ev.MatchedRequirements, types.MatchedRequirement{
			JDText: fmt.Sprintf("Experience at %s", job.Company),
			ResumeSnippets: []string{
				fmt.Sprintf("%s at %s", job.Title, job.Company),
				job.Dates,
			},
			SimilarityScore: 0.8,
		})
	}

	flags := resume.QualityFlags.Flags
	if flags.TooShort {
		ev.Concerns = append(ev.Concerns, "Resume appears to be too short")
	}
	if flags.MissingDates {
		ev.Concerns = append(ev.Concerns, "Missing dates in employment history")
	}

	return ev
}
