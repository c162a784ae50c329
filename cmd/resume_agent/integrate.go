package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/db"
	"github.com/urabe-chihiro/resume-ai/internal/supplement"
)

var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Merge supplementary information into the resume record",
	Long:  "Folds candidate-provided supplementary information into the session's resume record. The updated record replaces the cached one; on failure the record is left unchanged.",
	RunE:  runIntegrate,
}

var (
	integrateConfig     string
	integrateProfile    string
	integrateJob        string
	integrateSupplement string
	integrateSession    string
)

func init() {
	integrateCmd.Flags().StringVar(&integrateConfig, "config", "", "Path to config JSON file")
	integrateCmd.Flags().StringVar(&integrateProfile, "profile", "", "Path to candidate profile JSON file (required)")
	integrateCmd.Flags().StringVar(&integrateJob, "job", "", "Path to job requirements JSON file (required)")
	integrateCmd.Flags().StringVar(&integrateSupplement, "supplement", "", "Supplementary information to merge (required)")
	integrateCmd.Flags().StringVar(&integrateSession, "session", "", "Session ID")

	for _, flag := range []string{"profile", "job", "supplement"} {
		if err := integrateCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(integrateCmd)
}

func runIntegrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, integrateConfig, integrateSession, true)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadProfile(integrateProfile)
	if err != nil {
		return err
	}
	job, err := loadJobRequirements(integrateJob)
	if err != nil {
		return err
	}

	record := sessionRecord(ctx, a, profile, job)
	updated := supplement.Integrate(ctx, a.client, a.logger, record, integrateSupplement)

	if a.sessions != nil {
		if err := a.sessions.SetRecord(ctx, a.sessionID, updated); err != nil {
			a.logger.Warn("failed to cache updated record", zap.Error(err))
		}
	}
	if a.database != nil {
		_ = a.database.SaveArtifact(ctx, a.sessionID, db.ArtifactResumeRecord, updated)
	}

	return printJSON(updated)
}
