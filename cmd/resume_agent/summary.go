package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urabe-chihiro/resume-ai/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate a professional summary for the candidate",
	Long:  "Runs the analysis stages and generates a professional summary tailored to the target company, without the rest of the pipeline.",
	RunE:  runSummary,
}

var (
	summaryConfig  string
	summaryProfile string
	summaryJob     string
	summaryOutput  string
	summarySession string
)

func init() {
	summaryCmd.Flags().StringVar(&summaryConfig, "config", "", "Path to config JSON file")
	summaryCmd.Flags().StringVar(&summaryProfile, "profile", "", "Path to candidate profile JSON file (required)")
	summaryCmd.Flags().StringVar(&summaryJob, "job", "", "Path to job requirements JSON file (required)")
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "", "Output path for the summary text ('-' for stdout)")
	summaryCmd.Flags().StringVar(&summarySession, "session", "", "Session ID")

	for _, flag := range []string{"profile", "job"} {
		if err := summaryCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, summaryConfig, summarySession, true)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadProfile(summaryProfile)
	if err != nil {
		return err
	}
	job, err := loadJobRequirements(summaryJob)
	if err != nil {
		return err
	}

	orchestrator := pipeline.New(a.client, a.logger)
	companyAnalysis, requirementsAnalysis, err := orchestrator.Analyze(ctx, profile, job)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	summary, err := orchestrator.GenerateSummary(ctx, profile, companyAnalysis, requirementsAnalysis)
	if err != nil {
		return fmt.Errorf("summary generation failed: %w", err)
	}

	return writeOutput(summaryOutput, summary)
}
