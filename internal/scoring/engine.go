package scoring

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/evidence"
	"github.com/jonathan/resume-matcher/internal/types"
)

// neutralSemanticScore stands in for the semantic component when similarity
// cannot be computed, sitting at the midpoint of its range.
const neutralSemanticScore = 20

// SimilarityProvider computes a semantic similarity in [0,1] between two
// texts. Implementations typically call an external embedding service.
type SimilarityProvider interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Engine combines the deterministic sub-scores into a full MatchScore.
// A failure anywhere inside Score degrades to the fixed fallback bundle
// rather than surfacing an error.
type Engine struct {
	sim SimilarityProvider
	log *zap.Logger
	now func() time.Time
}

// NewEngine returns an Engine using the given similarity provider. The
// provider may be nil, in which case the semantic component is always the
// neutral fallback value.
func NewEngine(sim SimilarityProvider, log *zap.Logger) *Engine {
	return &Engine{
		sim: sim,
		log: log,
		now: time.Now,
	}
}

// Score computes the full match result for one resume against one job.
// The raw texts are only used for the semantic component; everything else
// reads structured data.
func (e *Engine) Score(ctx context.Context, resume *types.StructuredResume, resumeText string, job *types.JobRequirements, jobText string) (result *types.MatchScore) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("scoring failed, returning fallback bundle", zap.Any("panic", r))
			result = FallbackScore()
		}
	}()

	components := types.ComponentScores{
		SkillsMatch:        SkillsScore(resume.Skills, job.SkillsRequired, job.SkillsPreferred),
		ExperienceFit:      ExperienceScore(resume.EmploymentHistory, job.MinYearsExperience, e.now()),
		EducationMatch:     EducationScore(resume.Education, job.DegreeRequirements),
		SemanticSimilarity: e.SemanticScore(ctx, resumeText, jobText),
		Penalties:          PenaltiesScore(resume.QualityFlags),
	}

	overall := OverallScore(components)
	return &types.MatchScore{
		OverallScore:    overall,
		ComponentScores: components,
		Evidence:        evidence.Build(resume, job.SkillsRequired),
		Recommendations: evidence.Recommend(components, overall),
		Confidence:      Confidence(components),
	}
}

// SemanticScore scales the provider's similarity onto [0,40]. Provider
// errors are logged and replaced with the neutral midpoint so a flaky
// embedding service never fails a scoring run.
func (e *Engine) SemanticScore(ctx context.Context, resumeText, jobText string) int {
	if e.sim == nil {
		return neutralSemanticScore
	}

	similarity, err := e.sim.Similarity(ctx, resumeText, jobText)
	if err != nil {
		e.log.Warn("similarity unavailable, using neutral semantic score", zap.Error(err))
		return neutralSemanticScore
	}

	score := int(math.Round(similarity * types.MaxSemanticSimilarity))
	if score < 0 {
		score = 0
	}
	if score > types.MaxSemanticSimilarity {
		score = types.MaxSemanticSimilarity
	}
	return score
}
