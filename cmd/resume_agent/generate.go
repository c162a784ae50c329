package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/db"
	"github.com/urabe-chihiro/resume-ai/internal/pipeline"
	"github.com/urabe-chihiro/resume-ai/internal/render"
	"github.com/urabe-chihiro/resume-ai/internal/schemas"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the generation pipeline and render a structured resume",
	Long:  "Runs company analysis, requirements extraction, work experience refinement, and structure planning, then assembles the structured resume record and renders it as Markdown.",
	RunE:  runGenerate,
}

var (
	generateConfig      string
	generateProfile     string
	generateJob         string
	generateOutput      string
	generateSession     string
	generateWithSummary bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to config JSON file")
	generateCmd.Flags().StringVar(&generateProfile, "profile", "", "Path to candidate profile JSON file (required)")
	generateCmd.Flags().StringVar(&generateJob, "job", "", "Path to job requirements JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output path for the rendered Markdown ('-' for stdout)")
	generateCmd.Flags().StringVar(&generateSession, "session", "", "Session ID (generated if omitted)")
	generateCmd.Flags().BoolVar(&generateWithSummary, "with-summary", false, "Also generate a professional summary")

	if err := generateCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, generateConfig, generateSession, true)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadProfile(generateProfile)
	if err != nil {
		return err
	}
	job, err := loadJobRequirements(generateJob)
	if err != nil {
		return err
	}

	storeInputs(ctx, a, profile, job)

	orchestrator := pipeline.New(a.client, a.logger)

	var result *types.PipelineResult
	if generateWithSummary {
		result, err = orchestrator.GenerateWithSummary(ctx, profile, job)
	} else {
		result, err = orchestrator.Generate(ctx, profile, job)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := schemas.ValidateRecord(result.Record); err != nil {
		return fmt.Errorf("assembled record is invalid: %w", err)
	}

	storeResult(ctx, a, result)

	document := render.Markdown(result.Record)
	if a.sessions != nil {
		if err := a.sessions.SetDocument(ctx, a.sessionID, document); err != nil {
			a.logger.Warn("failed to cache document", zap.Error(err))
		}
	}

	a.logger.Info("generation complete",
		zap.String("session_id", a.sessionID),
		zap.Int("refined_experiences", len(result.RefinedExperiences)),
		zap.Bool("has_summary", result.Summary != ""))

	return writeOutput(generateOutput, document)
}

// storeInputs persists and indexes the submitted forms. Best-effort.
func storeInputs(ctx context.Context, a *app, profile *types.Profile, job *types.JobRequirements) {
	if a.database != nil {
		if _, err := a.database.SaveProfile(ctx, profile); err != nil {
			a.logger.Warn("failed to persist profile", zap.Error(err))
		}
		if _, err := a.database.SaveJobRequirements(ctx, job); err != nil {
			a.logger.Warn("failed to persist job requirements", zap.Error(err))
		}
	}
	if a.sessions != nil {
		if err := a.sessions.SetProfile(ctx, a.sessionID, profile); err != nil {
			a.logger.Warn("failed to cache profile", zap.Error(err))
		}
		if err := a.sessions.SetJobRequirements(ctx, a.sessionID, job); err != nil {
			a.logger.Warn("failed to cache job requirements", zap.Error(err))
		}
	}
	if a.documents != nil {
		a.documents.StoreProfile(ctx, a.sessionID, profile)
		a.documents.StoreJobContext(ctx, a.sessionID, job)
	}
}

// storeResult persists the pipeline outputs. Best-effort.
func storeResult(ctx context.Context, a *app, result *types.PipelineResult) {
	if a.database != nil {
		_ = a.database.SaveArtifact(ctx, a.sessionID, db.ArtifactPipelineResult, result)
		_ = a.database.SaveArtifact(ctx, a.sessionID, db.ArtifactResumeRecord, result.Record)
	}
	if a.sessions != nil {
		if err := a.sessions.SetRecord(ctx, a.sessionID, result.Record); err != nil {
			a.logger.Warn("failed to cache record", zap.Error(err))
		}
	}
	if a.documents != nil {
		a.documents.StoreAnalysis(ctx, a.sessionID, "company-analysis", result.CompanyAnalysis)
		a.documents.StoreAnalysis(ctx, a.sessionID, "requirements-extraction", result.RequirementsAnalysis)
	}
}
