package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/structurer"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Structure raw resume text into JSON entities",
	Long:  "Parses resume text into contact info, sections, skills, employment history, education, and a quality assessment. Runs fully offline; no API key needed.",
	RunE:  runStructure,
}

var (
	structureInputFile  string
	structureOutputFile string
)

func init() {
	structureCmd.Flags().StringVarP(&structureInputFile, "in", "i", "", "Path to resume text file (required)")
	structureCmd.Flags().StringVarP(&structureOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	_ = structureCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(structureCmd)
}

func runStructure(_ *cobra.Command, _ []string) error {
	inputContent, err := os.ReadFile(structureInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	resume := structurer.Structure(string(inputContent))

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateStructuredResume(jsonBytes); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: structured resume failed schema check: %v\n", err)
	}

	if structureOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(structureOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Structured resume written to %s\n", structureOutputFile)
	return nil
}
