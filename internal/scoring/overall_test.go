package scoring

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestOverallScore_SumMinusPenalties(t *testing.T) {
	c := types.ComponentScores{
		SkillsMatch:        17,
		ExperienceFit:      16,
		EducationMatch:     8,
		SemanticSimilarity: 30,
		Penalties:          4,
	}

	assert.Equal(t, 67, OverallScore(c))
}

func TestOverallScore_ClampedToRange(t *testing.T) {
	high := types.ComponentScores{
		SkillsMatch:        25,
		ExperienceFit:      20,
		EducationMatch:     10,
		SemanticSimilarity: 40,
		Penalties:          0,
	}
	over := types.ComponentScores{
		SkillsMatch:        60,
		ExperienceFit:      60,
		SemanticSimilarity: 60,
	}
	low := types.ComponentScores{Penalties: 10}

	assert.Equal(t, 95, OverallScore(high))
	assert.Equal(t, 100, OverallScore(over))
	assert.Equal(t, 0, OverallScore(low))
}

func TestConfidence_Base(t *testing.T) {
	assert.Equal(t, 70, Confidence(types.ComponentScores{}))
}

func TestConfidence_Adjustments(t *testing.T) {
	strong := types.ComponentScores{
		SkillsMatch:        20,
		SemanticSimilarity: 35,
	}
	weak := types.ComponentScores{Penalties: 8}

	assert.Equal(t, 90, Confidence(strong))
	assert.Equal(t, 55, Confidence(weak))
}
