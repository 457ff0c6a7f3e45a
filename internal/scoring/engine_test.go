package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/types"
)

type stubSimilarity struct {
	value float64
	err   error
}

func (s *stubSimilarity) Similarity(_ context.Context, _, _ string) (float64, error) {
	return s.value, s.err
}

func TestEngineScore_FullBundle(t *testing.T) {
	e := NewEngine(&stubSimilarity{value: 0.75}, zap.NewNop())
	e.now = func() time.Time { return scoringClock }

	resume := &types.StructuredResume{
		Skills: []string{"Python", "SQL"},
		EmploymentHistory: []types.JobEntry{
			{Title: "Senior Engineer", Company: "Acme", Dates: "2016 - 2022"},
		},
		Education: []types.EducationEntry{{Degree: "Bachelor of Science"}},
	}
	job := &types.JobRequirements{
		SkillsRequired:     []string{"python", "java"},
		SkillsPreferred:    []string{"sql"},
		DegreeRequirements: "bachelor",
	}

	result := e.Score(context.Background(), resume, "resume text", job, "job text")
	require.NotNil(t, result)

	assert.Equal(t, 17, result.ComponentScores.SkillsMatch)
	assert.Equal(t, 20, result.ComponentScores.ExperienceFit)
	assert.Equal(t, 8, result.ComponentScores.EducationMatch)
	assert.Equal(t, 30, result.ComponentScores.SemanticSimilarity)
	assert.Equal(t, 0, result.ComponentScores.Penalties)
	assert.Equal(t, 75, result.OverallScore)
	assert.Equal(t, 80, result.Confidence)
	assert.NotEmpty(t, result.Evidence.MatchedRequirements)
	assert.NotEmpty(t, result.Recommendations.Recruiter)
}

func TestEngineScore_EmptyResume(t *testing.T) {
	e := NewEngine(&stubSimilarity{value: 0.5}, zap.NewNop())

	result := e.Score(context.Background(), &types.StructuredResume{}, "", &types.JobRequirements{}, "")
	require.NotNil(t, result)

	assert.Equal(t, 0, result.ComponentScores.SkillsMatch)
	assert.Equal(t, 0, result.ComponentScores.ExperienceFit)
	assert.Equal(t, 0, result.ComponentScores.EducationMatch)
	assert.Equal(t, 0, result.ComponentScores.Penalties)
	assert.Equal(t, result.ComponentScores.SemanticSimilarity, result.OverallScore)
}

func TestEngineSemanticScore_ProviderError(t *testing.T) {
	e := NewEngine(&stubSimilarity{err: errors.New("embedding service down")}, zap.NewNop())

	assert.Equal(t, neutralSemanticScore, e.SemanticScore(context.Background(), "a", "b"))
}

func TestEngineSemanticScore_NilProvider(t *testing.T) {
	e := NewEngine(nil, zap.NewNop())

	assert.Equal(t, neutralSemanticScore, e.SemanticScore(context.Background(), "a", "b"))
}

func TestEngineSemanticScore_Rounds(t *testing.T) {
	e := NewEngine(&stubSimilarity{value: 0.33}, zap.NewNop())

	// 0.33 * 40 = 13.2 rounds to 13.
	assert.Equal(t, 13, e.SemanticScore(context.Background(), "a", "b"))
}

func TestEngineScore_PanicFallsBack(t *testing.T) {
	e := NewEngine(&stubSimilarity{value: 0.5}, zap.NewNop())

	var resume *types.StructuredResume
	result := e.Score(context.Background(), resume, "", &types.JobRequirements{}, "")
	require.NotNil(t, result)

	assert.Equal(t, 50, result.OverallScore)
	assert.Equal(t, 30, result.Confidence)
	assert.Equal(t, []string{"Unable to analyze"}, result.Recommendations.Talent)
	assert.Equal(t, []string{"Manual review"}, result.Recommendations.Recruiter)
}

func TestFallbackScore_FixedBundle(t *testing.T) {
	f := FallbackScore()

	assert.Equal(t, 50, f.OverallScore)
	assert.Equal(t, 12, f.ComponentScores.SkillsMatch)
	assert.Equal(t, 10, f.ComponentScores.ExperienceFit)
	assert.Equal(t, 5, f.ComponentScores.EducationMatch)
	assert.Equal(t, 20, f.ComponentScores.SemanticSimilarity)
	assert.Equal(t, 3, f.ComponentScores.Penalties)
	assert.Empty(t, f.Evidence.MatchedRequirements)
	assert.Equal(t, 30, f.Confidence)
}
