package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urabe-chihiro/resume-ai/internal/db"
	"github.com/urabe-chihiro/resume-ai/internal/pipeline"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Run the full pipeline and compose a free-form resume document",
	Long:  "Runs the generation pipeline with summary generation and then composes a persuasive Markdown resume document from the results in a final LLM pass.",
	RunE:  runCompose,
}

var (
	composeConfig  string
	composeProfile string
	composeJob     string
	composeOutput  string
	composeSession string
)

func init() {
	composeCmd.Flags().StringVar(&composeConfig, "config", "", "Path to config JSON file")
	composeCmd.Flags().StringVar(&composeProfile, "profile", "", "Path to candidate profile JSON file (required)")
	composeCmd.Flags().StringVar(&composeJob, "job", "", "Path to job requirements JSON file (required)")
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "Output path for the composed Markdown ('-' for stdout)")
	composeCmd.Flags().StringVar(&composeSession, "session", "", "Session ID (generated if omitted)")

	if err := composeCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := composeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, composeConfig, composeSession, true)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadProfile(composeProfile)
	if err != nil {
		return err
	}
	job, err := loadJobRequirements(composeJob)
	if err != nil {
		return err
	}

	storeInputs(ctx, a, profile, job)

	orchestrator := pipeline.New(a.client, a.logger)
	result, err := orchestrator.GenerateWithSummary(ctx, profile, job)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	storeResult(ctx, a, result)

	document, err := orchestrator.ComposeDocument(ctx, profile, job, result)
	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}

	if a.database != nil {
		_ = a.database.SaveTextArtifact(ctx, a.sessionID, db.ArtifactDocument, document)
	}
	if a.sessions != nil {
		_ = a.sessions.SetDocument(ctx, a.sessionID, document)
	}

	return writeOutput(composeOutput, document)
}
