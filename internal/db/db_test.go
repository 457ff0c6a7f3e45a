package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestStatusConstants(t *testing.T) {
	for _, status := range []string{
		ResumeStatusUploaded, ResumeStatusParsed, ResumeStatusFailed,
		RunStatusRunning, RunStatusCompleted, RunStatusFailed,
	} {
		assert.NotEmpty(t, status)
	}
}

func TestMatchScoreRoundTrip(t *testing.T) {
	// verifies the marshaling used by SaveMatchScore/GetMatchScore
	score := &types.MatchScore{
		OverallScore: 75,
		ComponentScores: types.ComponentScores{
			SkillsMatch:        17,
			SemanticSimilarity: 30,
		},
		Evidence: types.Evidence{
			MissingRequirements: []string{"kubernetes"},
		},
		Confidence: 80,
	}

	jsonBytes, err := json.Marshal(score)
	require.NoError(t, err)

	var got types.MatchScore
	require.NoError(t, json.Unmarshal(jsonBytes, &got))
	assert.Equal(t, *score, got)
}

func TestDuplicateMatchError(t *testing.T) {
	assert.ErrorContains(t, ErrDuplicateMatch, "already exists")
}
