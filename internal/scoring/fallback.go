package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// FallbackScore is returned whenever the scoring pipeline fails for any
// reason. The values are fixed mid-range placeholders with low confidence so
// a failed analysis still produces a complete, well-typed result.
func FallbackScore() *types.MatchScore {
	return &types.MatchScore{
		OverallScore: 50,
		ComponentScores: types.ComponentScores{
			SkillsMatch:        12,
			ExperienceFit:      10,
			EducationMatch:     5,
			SemanticSimilarity: 20,
			Penalties:          3,
		},
		Evidence: types.Evidence{
			MatchedRequirements: []types.MatchedRequirement{},
			MissingRequirements: []string{},
			Concerns:            []string{},
		},
		Recommendations: types.Recommendations{
			Talent:    []string{"Unable to analyze"},
			Recruiter: []string{"Manual review"},
		},
		Confidence: 30,
	}
}
