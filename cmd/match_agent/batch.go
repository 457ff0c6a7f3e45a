package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a directory of resumes against one job description",
	Long: `Reads every .txt file in the resume directory and analyzes each against
the job description. With --use-ai resumes are processed in fixed windows
of three concurrent requests with a short pause between windows; without
it each resume is scored by the deterministic engine. Failed resumes are
logged and excluded from the summary.`,
	RunE: runBatch,
}

var (
	batchConfigPath  string
	batchResumeDir   string
	batchJob         string
	batchAPIKey      string
	batchModel       string
	batchUseAI       bool
	batchVerbose     bool
	batchJSONLogs    bool
	batchDatabaseURL string
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchResumeDir, "resume-dir", "d", "", "Directory of resume text files")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "OpenRouter API key (optional, defaults to OPENROUTER_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "Chat model identifier")
	batchCmd.Flags().BoolVar(&batchUseAI, "use-ai", false, "Use model-backed analysis instead of the local engine")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCmd.Flags().BoolVar(&batchJSONLogs, "json-logs", false, "Emit logs as JSON")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, batchConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("resume-dir") {
			cfg.ResumeDir = batchResumeDir
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = batchJob
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = batchAPIKey
		}
		if cmd.Flags().Changed("model") {
			cfg.Model = batchModel
		}
		if cmd.Flags().Changed("use-ai") {
			cfg.UseAI = batchUseAI
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = batchVerbose
		}
		if cmd.Flags().Changed("json-logs") {
			cfg.JSONLogs = batchJSONLogs
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = batchDatabaseURL
		}
	})
	if err != nil {
		return err
	}

	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resume-dir is required (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}
	// The single-resume path must not win over batch when both are configured.
	cfg.Resume = ""

	return runPipeline(cfg)
}
