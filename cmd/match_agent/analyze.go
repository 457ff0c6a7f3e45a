package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume against a job description",
	Long: `Structures the resume text, extracts job requirements, scores the match
with the deterministic engine, and prints the result. With --use-ai the
analysis is delegated to the configured OpenRouter model, falling back to
the deterministic engine on failure.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeJob         string
	analyzeAPIKey      string
	analyzeModel       string
	analyzeUseAI       bool
	analyzeVerbose     bool
	analyzeJSONLogs    bool
	analyzeDatabaseURL string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "OpenRouter API key (optional, defaults to OPENROUTER_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Chat model identifier")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "use-ai", false, "Use model-backed analysis instead of the local engine")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, analyzeConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("resume") {
			cfg.Resume = analyzeResume
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = analyzeJob
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = analyzeAPIKey
		}
		if cmd.Flags().Changed("model") {
			cfg.Model = analyzeModel
		}
		if cmd.Flags().Changed("use-ai") {
			cfg.UseAI = analyzeUseAI
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = analyzeVerbose
		}
		if cmd.Flags().Changed("json-logs") {
			cfg.JSONLogs = analyzeJSONLogs
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = analyzeDatabaseURL
		}
	})
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	return runPipeline(cfg)
}

// loadMergedConfig loads the optional config file, applies CLI overrides
// through apply, and resolves environment fallbacks.
func loadMergedConfig(_ *cobra.Command, configPath string, apply func(*config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	apply(&cfg)

	// Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Model:          "mistralai/devstral-2512:free",
		EmbeddingModel: "openai/text-embedding-3-small",
	})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.UseAI && cfg.APIKey == "" {
		return cfg, fmt.Errorf("--use-ai requires an API key (set OPENROUTER_API_KEY or use --api-key)")
	}
	return cfg, nil
}

func runPipeline(cfg config.Config) error {
	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("building logger failed: %w", err)
	}

	return pipeline.RunPipeline(context.Background(), pipeline.RunOptions{
		ResumePath:     cfg.Resume,
		ResumeDir:      cfg.ResumeDir,
		JobPath:        cfg.Job,
		APIKey:         cfg.APIKey,
		Model:          cfg.Model,
		EmbeddingModel: cfg.EmbeddingModel,
		SiteURL:        cfg.SiteURL,
		SiteName:       cfg.SiteName,
		UseAI:          cfg.UseAI,
		Verbose:        cfg.Verbose,
		DatabaseURL:    cfg.DatabaseURL,
		Logger:         log,
	})
}
