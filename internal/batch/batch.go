// Package batch runs resume analyses against one job description in fixed
// sliding windows, pacing calls so the upstream API is never flooded.
package batch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/openrouter"
)

const (
	// defaultWindow is how many analyses run concurrently.
	defaultWindow = 3
	// defaultPause separates consecutive windows.
	defaultPause = 100 * time.Millisecond
)

// Analyzer is the single operation the batch runner needs.
type Analyzer interface {
	AnalyzeMatch(ctx context.Context, resumeText, jobText string) (*openrouter.AnalysisResult, error)
}

// Item is one resume queued for analysis.
type Item struct {
	ResumeID string
	Text     string
}

// Result ties an analysis back to its originating resume.
type Result struct {
	ResumeID string
	Analysis *openrouter.AnalysisResult
}

// Runner processes batches of resumes against a job description.
type Runner struct {
	analyzer Analyzer
	log      *zap.Logger
	window   int
	pause    time.Duration
}

// NewRunner creates a Runner with the default window size and pacing.
func NewRunner(analyzer Analyzer, log *zap.Logger) *Runner {
	return &Runner{
		analyzer: analyzer,
		log:      log,
		window:   defaultWindow,
		pause:    defaultPause,
	}
}

// Run analyzes every item against jobText. Items are processed in windows;
// a failed item is logged and excluded without affecting its siblings, so
// the result list may be shorter than the input. Window order is preserved
// in the results; order within a window is by input position, not
// completion time. The job description is validated once up front since a
// bad job fails every item identically.
func (r *Runner) Run(ctx context.Context, jobText string, items []Item) ([]Result, error) {
	if err := openrouter.ValidateJobDescription(jobText); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(items))
	for start := 0; start < len(items); start += r.window {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		end := start + r.window
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]
		slots := make([]*Result, len(chunk))

		// a plain group, not WithContext: one failed item must not
		// cancel the rest of the window.
		var g errgroup.Group
		for i, item := range chunk {
			i, item := i, item
			g.Go(func() error {
				analysis, err := r.analyzer.AnalyzeMatch(ctx, item.Text, jobText)
				if err != nil {
					r.log.Warn("resume analysis failed, excluding from batch",
						zap.String("resume_id", item.ResumeID),
						zap.Error(err))
					return nil
				}
				slots[i] = &Result{ResumeID: item.ResumeID, Analysis: analysis}
				return nil
			})
		}
		_ = g.Wait()

		for _, slot := range slots {
			if slot != nil {
				results = append(results, *slot)
			}
		}

		if end < len(items) {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(r.pause):
			}
		}
	}

	return results, nil
}
