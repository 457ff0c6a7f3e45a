package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// OverallScore combines the components: the four positive scores added,
// penalties subtracted, clamped to [0,100].
func OverallScore(c types.ComponentScores) int {
	overall := c.SkillsMatch + c.ExperienceFit + c.EducationMatch + c.SemanticSimilarity - c.Penalties
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}
	return overall
}

// Confidence estimates how much to trust a score bundle (0-100). This is a
// heuristic reading of data quality, not a statistical confidence: strong
// semantic and skills signals raise it, heavy penalties lower it.
func Confidence(c types.ComponentScores) int {
	confidence := 70
	if c.SemanticSimilarity > 30 {
		confidence += 10
	}
	if c.SkillsMatch > 15 {
		confidence += 10
	}
	if c.Penalties > 5 {
		confidence -= 15
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}
