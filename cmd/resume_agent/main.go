// Package main implements the resume_agent CLI for multi-stage resume
// generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "AI resume generator",
	Long:  "resume_agent generates job-tailored resumes through a multi-stage LLM pipeline: company analysis, requirements extraction, work experience refinement, structure planning, and document composition.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
