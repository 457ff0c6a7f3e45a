package evidence

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeSkillGap splits the job's skills into those found in the resume and
// those missing from it. Comparison is case-insensitive; both result lists
// are lower-cased, deduplicated, and sorted.
func AnalyzeSkillGap(resumeSkills, jobSkills []string) types.SkillGap {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(s)] = true
	}

	matchedSet := make(map[string]bool)
	missingSet := make(map[string]bool)
	for _, s := range jobSkills {
		lower := strings.ToLower(s)
		if have[lower] {
			matchedSet[lower] = true
		} else {
			missingSet[lower] = true
		}
	}

	gap := types.SkillGap{
		Matched: make([]string, 0, len(matchedSet)),
		Missing: make([]string, 0, len(missingSet)),
	}
	for s := range matchedSet {
		gap.Matched = append(gap.Matched, s)
	}
	for s := range missingSet {
		gap.Missing = append(gap.Missing, s)
	}
	sort.Strings(gap.Matched)
	sort.Strings(gap.Missing)
	return gap
}
