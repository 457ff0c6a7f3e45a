// Package scoring computes the deterministic five-component match score
// between a structured resume and a job's requirements. Every sub-score is a
// pure function of its inputs and stays inside its fixed cap.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights for the skills component: required coverage is worth 15 points,
// preferred coverage 10, capped together at 25.
const (
	requiredSkillsWeight  = 15
	preferredSkillsWeight = 10
)

// SkillsScore computes the skills match component (0-25). Matching is
// case-insensitive set membership. A resume with no skills scores 0 no
// matter what the job asks for.
func SkillsScore(resumeSkills, required, preferred []string) int {
	if len(resumeSkills) == 0 {
		return 0
	}

	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(s)] = true
	}

	coverage := func(wanted []string) float64 {
		matches := 0
		for _, s := range wanted {
			if have[strings.ToLower(s)] {
				matches++
			}
		}
		return float64(matches) / float64(len(wanted))
	}

	score := 0.0
	if len(required) > 0 {
		score += coverage(required) * requiredSkillsWeight
	}
	if len(preferred) > 0 {
		score += coverage(preferred) * preferredSkillsWeight
	}

	result := int(score)
	if result > types.MaxSkillsMatch {
		result = types.MaxSkillsMatch
	}
	return result
}
