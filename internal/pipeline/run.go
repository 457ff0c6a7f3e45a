// Package pipeline provides the high-level orchestration for the resume-to-job
// matching process.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/batch"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/evidence"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/openrouter"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/structurer"
	"github.com/jonathan/resume-matcher/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath     string
	ResumeDir      string
	JobPath        string
	APIKey         string
	Model          string
	EmbeddingModel string
	SiteURL        string
	SiteName       string
	UseAI          bool
	Verbose        bool
	DatabaseURL    string
	Logger         *zap.Logger
}

// matchAnalyzer is the model-backed surface the pipeline depends on.
// *openrouter.Analyzer satisfies it; tests substitute fakes.
type matchAnalyzer interface {
	AnalyzeMatch(ctx context.Context, resumeText, jobText string) (*openrouter.AnalysisResult, error)
	StructureJob(ctx context.Context, text string) (*types.JobRequirements, error)
	ExtractSkills(ctx context.Context, text string, knownSkills []string) ([]string, error)
	ImproveBullets(ctx context.Context, bullets, requirements []string) []string
}

// Runner executes single and batch match analyses with a fixed set of
// collaborators. The analyzer and database may be nil; the pipeline then
// runs fully deterministic and skips persistence.
type Runner struct {
	analyzer matchAnalyzer
	engine   *scoring.Engine
	database *db.DB
	printer  *observability.Printer
	log      *zap.Logger
	verbose  bool
}

// NewRunner assembles a Runner from its collaborators.
func NewRunner(engine *scoring.Engine, analyzer matchAnalyzer, database *db.DB, printer *observability.Printer, log *zap.Logger, verbose bool) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		analyzer: analyzer,
		engine:   engine,
		database: database,
		printer:  printer,
		log:      log,
		verbose:  verbose,
	}
}

// RunPipeline wires real collaborators from options and executes the
// requested flow: batch when ResumeDir is set, single-resume otherwise.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	jobBytes, err := os.ReadFile(opts.JobPath)
	if err != nil {
		return fmt.Errorf("reading job description failed: %w", err)
	}
	jobText := string(jobBytes)

	printer := observability.NewPrinter(os.Stdout)

	// Database persistence is optional; a connection failure downgrades the
	// run rather than aborting it.
	var database *db.DB
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn("database connection failed, continuing without persistence", zap.Error(err))
			database = nil
		} else {
			defer database.Close()
		}
	}

	var analyzer matchAnalyzer
	var sim scoring.SimilarityProvider
	if opts.UseAI {
		client, err := openrouter.NewClient(openrouter.Config{
			APIKey:         opts.APIKey,
			Model:          opts.Model,
			EmbeddingModel: opts.EmbeddingModel,
			SiteURL:        opts.SiteURL,
			SiteName:       opts.SiteName,
		}, log)
		if err != nil {
			return fmt.Errorf("building model client failed: %w", err)
		}
		analyzer = openrouter.NewAnalyzer(client, log)
		sim = client
	}

	engine := scoring.NewEngine(sim, log)
	runner := NewRunner(engine, analyzer, database, printer, log, opts.Verbose)

	if opts.ResumeDir != "" {
		items, err := loadResumeDir(opts.ResumeDir)
		if err != nil {
			return err
		}
		_, err = runner.RunBatch(ctx, jobText, items)
		return err
	}

	resumeBytes, err := os.ReadFile(opts.ResumePath)
	if err != nil {
		return fmt.Errorf("reading resume failed: %w", err)
	}
	_, err = runner.RunSingle(ctx, string(resumeBytes), jobText)
	return err
}

// RunSingle analyzes one resume against the job description and returns the
// match score. The score is persisted when a database is configured.
func (r *Runner) RunSingle(ctx context.Context, resumeText, jobText string) (*types.MatchScore, error) {
	if err := openrouter.ValidateJobDescription(jobText); err != nil {
		return nil, err
	}

	fmt.Printf("Step 1/4: Structuring resume...\n")
	structured := r.structureResume(ctx, resumeText)
	if r.verbose {
		r.printer.PrintStructuredResume(structured)
	}

	fmt.Printf("Step 2/4: Extracting job requirements...\n")
	job := r.jobRequirements(ctx, jobText)
	if r.verbose {
		r.printer.PrintJobRequirements(job)
	}

	gap := evidence.AnalyzeSkillGap(structured.Skills, job.SkillsRequired)
	r.log.Debug("skill gap",
		zap.Strings("matched", gap.Matched),
		zap.Strings("missing", gap.Missing))

	fmt.Printf("Step 3/4: Scoring match...\n")
	score := r.scoreMatch(ctx, structured, resumeText, job, jobText)
	if r.verbose {
		r.printer.PrintMatchScore(score)
	}

	fmt.Printf("Step 4/4: Persisting results...\n")
	if r.database != nil {
		if err := r.persistSingle(ctx, resumeText, structured, jobText, score); err != nil {
			r.log.Warn("persisting match failed", zap.Error(err))
		}
	}

	return score, nil
}

// RunBatch analyzes every resume in items against the job description and
// returns overall scores keyed by resume id. Per-item failures are excluded
// from the summary, matching the batch runner's contract.
func (r *Runner) RunBatch(ctx context.Context, jobText string, items []batch.Item) (map[string]int, error) {
	if err := openrouter.ValidateJobDescription(jobText); err != nil {
		return nil, err
	}

	fmt.Printf("Step 1/3: Extracting job requirements...\n")
	job := r.jobRequirements(ctx, jobText)
	if r.verbose {
		r.printer.PrintJobRequirements(job)
	}

	fmt.Printf("Step 2/3: Analyzing %d resumes...\n", len(items))
	scores := make(map[string]*types.MatchScore, len(items))
	if r.analyzer != nil {
		results, err := batch.NewRunner(r.analyzer, r.log).Run(ctx, jobText, items)
		if err != nil {
			return nil, err
		}
		for _, res := range results {
			scores[res.ResumeID] = r.normalizeAnalysis(res.Analysis)
		}
	} else {
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := openrouter.ValidateResumeText(item.Text); err != nil {
				r.log.Warn("skipping resume", zap.String("resume_id", item.ResumeID), zap.Error(err))
				continue
			}
			structured := r.structureResume(ctx, item.Text)
			scores[item.ResumeID] = r.engine.Score(ctx, structured, item.Text, job, jobText)
		}
	}

	fmt.Printf("Step 3/3: Persisting results...\n")
	if r.database != nil {
		if err := r.persistBatch(ctx, jobText, items, scores); err != nil {
			r.log.Warn("persisting batch failed", zap.Error(err))
		}
	}

	summary := make(map[string]int, len(scores))
	for id, score := range scores {
		summary[id] = score.OverallScore
	}
	r.printer.PrintBatchSummary(summary)
	return summary, nil
}

// ImproveBullets rewrites the bullets of the resume's most recent position
// toward the job's required qualifications. Requires the model analyzer.
func (r *Runner) ImproveBullets(ctx context.Context, resumeText, jobText string) ([]string, error) {
	if r.analyzer == nil {
		return nil, fmt.Errorf("bullet improvement requires the model analyzer")
	}
	if err := openrouter.ValidateJobDescription(jobText); err != nil {
		return nil, err
	}
	if err := openrouter.ValidateResumeText(resumeText); err != nil {
		return nil, err
	}

	structured := structurer.Structure(resumeText)
	if len(structured.EmploymentHistory) == 0 || len(structured.EmploymentHistory[0].Bullets) == 0 {
		return nil, fmt.Errorf("no bullets found in the most recent position")
	}

	job := r.jobRequirements(ctx, jobText)
	requirements := job.RequirementsRequired
	if len(requirements) == 0 {
		requirements = job.SkillsRequired
	}
	return r.analyzer.ImproveBullets(ctx, structured.EmploymentHistory[0].Bullets, requirements), nil
}

// structureResume parses the raw text and, when the analyzer is present,
// enriches the deterministic skill set with model-extracted skills.
func (r *Runner) structureResume(ctx context.Context, resumeText string) *types.StructuredResume {
	structured := structurer.Structure(resumeText)

	if r.analyzer != nil {
		aiSkills, err := r.analyzer.ExtractSkills(ctx, resumeText, structured.Skills)
		if err != nil {
			r.log.Warn("model skill extraction failed", zap.Error(err))
		} else {
			structured.Skills = mergeSkills(structured.Skills, aiSkills)
		}
	}

	if doc, err := json.Marshal(structured); err == nil {
		if err := schemas.ValidateStructuredResume(doc); err != nil {
			r.log.Warn("structured resume failed schema check", zap.Error(err))
		}
	}
	return structured
}

// jobRequirements structures the job description, via the model when
// available, falling back to deterministic skill extraction.
func (r *Runner) jobRequirements(ctx context.Context, jobText string) *types.JobRequirements {
	if r.analyzer != nil {
		job, err := r.analyzer.StructureJob(ctx, jobText)
		if err == nil {
			return job
		}
		r.log.Warn("model job structuring failed, extracting skills locally", zap.Error(err))
	}
	return &types.JobRequirements{SkillsRequired: structurer.ExtractSkills(jobText)}
}

// scoreMatch prefers the model analysis and falls back to the deterministic
// engine when the model path fails.
func (r *Runner) scoreMatch(ctx context.Context, structured *types.StructuredResume, resumeText string, job *types.JobRequirements, jobText string) *types.MatchScore {
	if r.analyzer != nil {
		analysis, err := r.analyzer.AnalyzeMatch(ctx, resumeText, jobText)
		if err == nil {
			return r.normalizeAnalysis(analysis)
		}
		r.log.Warn("model analysis failed, scoring deterministically", zap.Error(err))
	}
	return r.engine.Score(ctx, structured, resumeText, job, jobText)
}

// normalizeAnalysis converts a model analysis into the shared score shape,
// logging when the document breaks the post-merge contract.
func (r *Runner) normalizeAnalysis(analysis *openrouter.AnalysisResult) *types.MatchScore {
	if doc, err := json.Marshal(analysis); err == nil {
		if err := schemas.ValidateAnalysisResult(doc); err != nil {
			r.log.Warn("model analysis failed schema check", zap.Error(err))
		}
	}
	return &types.MatchScore{
		OverallScore:    analysis.OverallScore,
		ComponentScores: analysis.ComponentScores,
		Evidence: types.Evidence{
			MatchedRequirements: analysis.MatchedRequirements,
			MissingRequirements: analysis.MissingRequirements,
			Concerns:            analysis.Concerns,
		},
		Recommendations: analysis.Recommendations,
		Confidence:      analysis.Confidence,
	}
}

func (r *Runner) persistSingle(ctx context.Context, resumeText string, structured *types.StructuredResume, jobText string, score *types.MatchScore) error {
	runID, err := r.database.CreateAnalysisRun(ctx, jobText)
	if err != nil {
		return fmt.Errorf("creating analysis run failed: %w", err)
	}

	resumeID, err := r.database.CreateResume(ctx, resumeText)
	if err != nil {
		_ = r.database.CompleteAnalysisRun(ctx, runID, db.RunStatusFailed)
		return fmt.Errorf("creating resume record failed: %w", err)
	}
	if err := r.database.SaveStructuredResume(ctx, resumeID, structured); err != nil {
		r.log.Warn("saving structured resume failed", zap.Error(err))
	}
	if err := r.database.UpdateResumeStatus(ctx, resumeID, db.ResumeStatusParsed); err != nil {
		r.log.Warn("updating resume status failed", zap.Error(err))
	}

	if err := r.database.SaveMatchScore(ctx, runID, resumeID, score); err != nil {
		_ = r.database.CompleteAnalysisRun(ctx, runID, db.RunStatusFailed)
		return fmt.Errorf("saving match score failed: %w", err)
	}
	return r.database.CompleteAnalysisRun(ctx, runID, db.RunStatusCompleted)
}

func (r *Runner) persistBatch(ctx context.Context, jobText string, items []batch.Item, scores map[string]*types.MatchScore) error {
	runID, err := r.database.CreateAnalysisRun(ctx, jobText)
	if err != nil {
		return fmt.Errorf("creating analysis run failed: %w", err)
	}

	for _, item := range items {
		score, ok := scores[item.ResumeID]
		if !ok {
			continue
		}
		resumeID, err := r.database.CreateResume(ctx, item.Text)
		if err != nil {
			r.log.Warn("creating resume record failed", zap.String("resume_id", item.ResumeID), zap.Error(err))
			continue
		}
		if err := r.database.SaveMatchScore(ctx, runID, resumeID, score); err != nil {
			r.log.Warn("saving match score failed", zap.String("resume_id", item.ResumeID), zap.Error(err))
		}
	}
	return r.database.CompleteAnalysisRun(ctx, runID, db.RunStatusCompleted)
}

// loadResumeDir reads every .txt file in dir as one batch item, keyed by
// file name without extension, in lexical order.
func loadResumeDir(dir string) ([]batch.Item, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("listing resume directory failed: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .txt resumes found in %s", dir)
	}
	sort.Strings(paths)

	items := make([]batch.Item, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading resume %s failed: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		items = append(items, batch.Item{ResumeID: name, Text: string(data)})
	}
	return items, nil
}

// mergeSkills unions the deterministic and model-extracted skill lists,
// deduplicating case-insensitively and keeping the result sorted.
func mergeSkills(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	merged := make([]string, 0, len(base)+len(extra))
	for _, s := range base {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, s)
	}
	for _, s := range extra {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, strings.TrimSpace(s))
	}
	sort.Strings(merged)
	return merged
}
