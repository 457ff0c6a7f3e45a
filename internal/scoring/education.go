package scoring

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// EducationScore computes the education match component (0-10). An entry
// whose degree text contains the requirement string scores 8 and ends the
// scan. Otherwise each entry can add one level bonus (bachelor 6, master 7,
// phd 10) when the requirement mentions the same level, and those bonuses
// accumulate across entries. Holding more than one degree adds 2.
func EducationScore(education []types.EducationEntry, degreeRequirement string) int {
	if len(education) == 0 {
		return 0
	}

	score := 0
	if degreeRequirement != "" {
		req := strings.ToLower(degreeRequirement)
		for _, edu := range education {
			degree := strings.ToLower(edu.Degree)
			if strings.Contains(degree, req) {
				score += 8
				break
			} else if strings.Contains(req, "bachelor") && strings.Contains(degree, "bachelor") {
				score += 6
			} else if strings.Contains(req, "master") && strings.Contains(degree, "master") {
				score += 7
			} else if strings.Contains(req, "phd") && strings.Contains(degree, "phd") {
				score += 10
			}
		}
	}

	if len(education) > 1 {
		score += 2
	}

	if score > types.MaxEducationMatch {
		score = types.MaxEducationMatch
	}
	return score
}
