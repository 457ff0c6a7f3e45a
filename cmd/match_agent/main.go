// Package main provides the entry point for the resume matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Resume-to-job match analysis",
	Long:  "Resume Matcher structures raw resume text, scores it against a job description with a deterministic five-component engine, and optionally runs a model-backed semantic analysis through OpenRouter.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
