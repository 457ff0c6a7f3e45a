package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/batch"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/openrouter"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

const pipelineJobText = `Senior Software Engineer

We are looking for a Senior Software Engineer to join our platform team.
You will design and build distributed backend services in Go and Python,
own PostgreSQL schema design, and mentor junior engineers across the org.

Requirements:
- 5+ years of professional software development experience
- Strong knowledge of Python and SQL
- Experience with cloud infrastructure and containerized deployments
`

const pipelineResumeText = `Jane Doe
jane.doe@example.com
(555) 123-4567

EXPERIENCE
Senior Software Engineer
Acme Corporation
Jan 2018 - Dec 2023
• Built distributed data pipelines in Python processing millions of events
• Led a team of four engineers delivering the billing platform

EDUCATION
Bachelor of Science in Computer Science
State University
2010 - 2014

SKILLS
Python, SQL, Docker, Kubernetes
`

type fakeAnalyzer struct {
	mu           sync.Mutex
	analysis     *openrouter.AnalysisResult
	analyzeErr   error
	job          *types.JobRequirements
	jobErr       error
	skills       []string
	skillsErr    error
	improved     []string
	analyzeCalls int
}

func (f *fakeAnalyzer) AnalyzeMatch(_ context.Context, _, _ string) (*openrouter.AnalysisResult, error) {
	f.mu.Lock()
	f.analyzeCalls++
	f.mu.Unlock()
	return f.analysis, f.analyzeErr
}

func (f *fakeAnalyzer) StructureJob(_ context.Context, _ string) (*types.JobRequirements, error) {
	return f.job, f.jobErr
}

func (f *fakeAnalyzer) ExtractSkills(_ context.Context, _ string, _ []string) ([]string, error) {
	return f.skills, f.skillsErr
}

func (f *fakeAnalyzer) ImproveBullets(_ context.Context, bullets, _ []string) []string {
	if f.improved != nil {
		return f.improved
	}
	return bullets
}

func newTestRunner(analyzer matchAnalyzer) *Runner {
	engine := scoring.NewEngine(nil, zap.NewNop())
	printer := observability.NewPrinter(io.Discard)
	return NewRunner(engine, analyzer, nil, printer, zap.NewNop(), false)
}

func sampleAnalysis() *openrouter.AnalysisResult {
	return &openrouter.AnalysisResult{
		OverallScore: 72,
		ComponentScores: types.ComponentScores{
			SkillsMatch:        18,
			ExperienceFit:      16,
			EducationMatch:     8,
			SemanticSimilarity: 32,
			Penalties:          2,
		},
		MatchedRequirements: []types.MatchedRequirement{
			{JDText: "python", ResumeSnippets: []string{"data pipelines in Python"}, SimilarityScore: 0.9},
		},
		MissingRequirements: []string{"cloud infrastructure"},
		Concerns:            []string{},
		Recommendations: types.Recommendations{
			Talent:    []string{"Highlight cloud work"},
			Recruiter: []string{"Strong technical background"},
		},
		Confidence: 85,
	}
}

func TestRunSingle_Deterministic(t *testing.T) {
	runner := newTestRunner(nil)

	score, err := runner.RunSingle(context.Background(), pipelineResumeText, pipelineJobText)
	require.NoError(t, err)
	require.NotNil(t, score)

	// No similarity provider: the semantic component stays neutral.
	assert.Equal(t, 20, score.ComponentScores.SemanticSimilarity)
	assert.GreaterOrEqual(t, score.OverallScore, 0)
	assert.LessOrEqual(t, score.OverallScore, 100)
	assert.NotEmpty(t, score.Evidence.MatchedRequirements)
}

func TestRunSingle_RejectsBadJobDescription(t *testing.T) {
	runner := newTestRunner(nil)

	_, err := runner.RunSingle(context.Background(), pipelineResumeText, "too short")
	require.Error(t, err)

	var vErr *openrouter.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRunSingle_ModelAnalysis(t *testing.T) {
	fake := &fakeAnalyzer{
		analysis: sampleAnalysis(),
		job:      &types.JobRequirements{SkillsRequired: []string{"python", "sql"}},
		skills:   []string{"Terraform"},
	}
	runner := newTestRunner(fake)

	score, err := runner.RunSingle(context.Background(), pipelineResumeText, pipelineJobText)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.analyzeCalls)
	assert.Equal(t, 72, score.OverallScore)
	assert.Equal(t, 85, score.Confidence)
	assert.Equal(t, []string{"cloud infrastructure"}, score.Evidence.MissingRequirements)
}

func TestRunSingle_ModelFailureFallsBackToEngine(t *testing.T) {
	fake := &fakeAnalyzer{
		analyzeErr: errors.New("upstream down"),
		job:        &types.JobRequirements{SkillsRequired: []string{"python"}},
		skillsErr:  errors.New("upstream down"),
	}
	runner := newTestRunner(fake)

	score, err := runner.RunSingle(context.Background(), pipelineResumeText, pipelineJobText)
	require.NoError(t, err)
	require.NotNil(t, score)

	// Deterministic engine output, not the (failed) model analysis.
	assert.Equal(t, 20, score.ComponentScores.SemanticSimilarity)
	assert.Equal(t, 15, score.ComponentScores.SkillsMatch)
}

func TestRunSingle_JobStructuringFallsBackToLocalSkills(t *testing.T) {
	fake := &fakeAnalyzer{
		analysis: sampleAnalysis(),
		jobErr:   errors.New("model returned garbage"),
	}
	runner := newTestRunner(fake)

	score, err := runner.RunSingle(context.Background(), pipelineResumeText, pipelineJobText)
	require.NoError(t, err)
	assert.Equal(t, 72, score.OverallScore)
}

func TestRunBatch_Deterministic(t *testing.T) {
	runner := newTestRunner(nil)

	items := []batch.Item{
		{ResumeID: "alpha", Text: pipelineResumeText},
		{ResumeID: "beta", Text: pipelineResumeText},
	}
	summary, err := runner.RunBatch(context.Background(), pipelineJobText, items)
	require.NoError(t, err)

	assert.Len(t, summary, 2)
	assert.Contains(t, summary, "alpha")
	assert.Contains(t, summary, "beta")
	assert.Equal(t, summary["alpha"], summary["beta"])
}

func TestRunBatch_SkipsInvalidResume(t *testing.T) {
	runner := newTestRunner(nil)

	items := []batch.Item{
		{ResumeID: "good", Text: pipelineResumeText},
		{ResumeID: "junk", Text: "qwerty"},
	}
	summary, err := runner.RunBatch(context.Background(), pipelineJobText, items)
	require.NoError(t, err)

	assert.Contains(t, summary, "good")
	assert.NotContains(t, summary, "junk")
}

func TestRunBatch_ModelPath(t *testing.T) {
	fake := &fakeAnalyzer{
		analysis: sampleAnalysis(),
		job:      &types.JobRequirements{SkillsRequired: []string{"python"}},
	}
	runner := newTestRunner(fake)

	items := []batch.Item{
		{ResumeID: "alpha", Text: pipelineResumeText},
		{ResumeID: "beta", Text: pipelineResumeText},
	}
	summary, err := runner.RunBatch(context.Background(), pipelineJobText, items)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.analyzeCalls)
	assert.Equal(t, map[string]int{"alpha": 72, "beta": 72}, summary)
}

func TestImproveBullets(t *testing.T) {
	fake := &fakeAnalyzer{
		job:      &types.JobRequirements{RequirementsRequired: []string{"5+ years of Go"}},
		improved: []string{"Architected distributed data pipelines in Python"},
	}
	runner := newTestRunner(fake)

	bullets, err := runner.ImproveBullets(context.Background(), pipelineResumeText, pipelineJobText)
	require.NoError(t, err)
	assert.Equal(t, []string{"Architected distributed data pipelines in Python"}, bullets)
}

func TestImproveBullets_RequiresAnalyzer(t *testing.T) {
	runner := newTestRunner(nil)

	_, err := runner.ImproveBullets(context.Background(), pipelineResumeText, pipelineJobText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyzer")
}

func TestLoadResumeDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("resume b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("resume a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	items, err := loadResumeDir(dir)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ResumeID)
	assert.Equal(t, "b", items[1].ResumeID)
	assert.Equal(t, "resume a", items[0].Text)
}

func TestLoadResumeDir_Empty(t *testing.T) {
	_, err := loadResumeDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .txt resumes")
}

func TestMergeSkills(t *testing.T) {
	merged := mergeSkills([]string{"Python", "SQL"}, []string{"python", "Terraform", "  ", "SQL"})
	assert.Equal(t, []string{"Python", "SQL", "Terraform"}, merged)
}
