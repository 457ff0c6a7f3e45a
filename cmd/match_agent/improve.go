package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/openrouter"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Rewrite resume bullets toward a job's requirements",
	Long:  "Takes the bullets of the resume's most recent position and asks the model to rewrite them against the job's required qualifications. Any model failure returns the original bullets unchanged.",
	RunE:  runImprove,
}

var (
	improveResume   string
	improveJob      string
	improveAPIKey   string
	improveModel    string
	improveVerbose  bool
	improveJSONLogs bool
)

func init() {
	improveCmd.Flags().StringVarP(&improveResume, "resume", "r", "", "Path to resume text file (required)")
	improveCmd.Flags().StringVarP(&improveJob, "job", "j", "", "Path to job description text file (required)")
	improveCmd.Flags().StringVar(&improveAPIKey, "api-key", "", "OpenRouter API key (optional, defaults to OPENROUTER_API_KEY env var)")
	improveCmd.Flags().StringVar(&improveModel, "model", "", "Chat model identifier")
	improveCmd.Flags().BoolVarP(&improveVerbose, "verbose", "v", false, "Print detailed debug information")
	improveCmd.Flags().BoolVar(&improveJSONLogs, "json-logs", false, "Emit logs as JSON")
	_ = improveCmd.MarkFlagRequired("resume")
	_ = improveCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, "", func(cfg *config.Config) {
		cfg.Resume = improveResume
		cfg.Job = improveJob
		cfg.APIKey = improveAPIKey
		cfg.Model = improveModel
		cfg.UseAI = true
		cfg.Verbose = improveVerbose
		cfg.JSONLogs = improveJSONLogs
	})
	if err != nil {
		return err
	}

	resumeBytes, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobBytes, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("building logger failed: %w", err)
	}

	client, err := openrouter.NewClient(openrouter.Config{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	}, log)
	if err != nil {
		return fmt.Errorf("building model client failed: %w", err)
	}
	analyzer := openrouter.NewAnalyzer(client, log)
	engine := scoring.NewEngine(client, log)
	runner := pipeline.NewRunner(engine, analyzer, nil, observability.NewPrinter(os.Stdout), log, cfg.Verbose)

	bullets, err := runner.ImproveBullets(context.Background(), string(resumeBytes), string(jobBytes))
	if err != nil {
		return err
	}

	fmt.Printf("Improved bullets:\n")
	for _, b := range bullets {
		fmt.Printf("  • %s\n", b)
	}
	return nil
}
