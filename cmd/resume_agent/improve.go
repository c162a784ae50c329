package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urabe-chihiro/resume-ai/internal/db"
	"github.com/urabe-chihiro/resume-ai/internal/pipeline"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Revise a composed document according to feedback",
	Long:  "Takes a previously composed resume document and reviewer feedback and produces a revised document. The document is read from the session cache when --input is omitted.",
	RunE:  runImprove,
}

var (
	improveConfig   string
	improveProfile  string
	improveJob      string
	improveInput    string
	improveFeedback string
	improveOutput   string
	improveSession  string
)

func init() {
	improveCmd.Flags().StringVar(&improveConfig, "config", "", "Path to config JSON file")
	improveCmd.Flags().StringVar(&improveProfile, "profile", "", "Path to candidate profile JSON file (required)")
	improveCmd.Flags().StringVar(&improveJob, "job", "", "Path to job requirements JSON file (required)")
	improveCmd.Flags().StringVar(&improveInput, "input", "", "Path to the current document (falls back to the session cache)")
	improveCmd.Flags().StringVar(&improveFeedback, "feedback", "", "Reviewer feedback to apply (required)")
	improveCmd.Flags().StringVarP(&improveOutput, "output", "o", "", "Output path for the revised Markdown ('-' for stdout)")
	improveCmd.Flags().StringVar(&improveSession, "session", "", "Session ID")

	for _, flag := range []string{"profile", "job", "feedback"} {
		if err := improveCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(improveCmd)
}

func runImprove(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, improveConfig, improveSession, true)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadProfile(improveProfile)
	if err != nil {
		return err
	}
	job, err := loadJobRequirements(improveJob)
	if err != nil {
		return err
	}

	var current string
	if improveInput != "" {
		data, err := os.ReadFile(improveInput)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		current = string(data)
	} else if a.sessions != nil {
		current, err = a.sessions.GetDocument(ctx, a.sessionID)
		if err != nil {
			return err
		}
	}
	if current == "" {
		return fmt.Errorf("no document to improve: pass --input or run compose first with the same --session")
	}

	orchestrator := pipeline.New(a.client, a.logger)
	revised, err := orchestrator.ImproveDocument(ctx, current, improveFeedback, profile, job)
	if err != nil {
		return fmt.Errorf("improvement failed: %w", err)
	}

	if a.database != nil {
		_ = a.database.SaveTextArtifact(ctx, a.sessionID, db.ArtifactDocument, revised)
	}
	if a.sessions != nil {
		_ = a.sessions.SetDocument(ctx, a.sessionID, revised)
	}

	return writeOutput(improveOutput, revised)
}
