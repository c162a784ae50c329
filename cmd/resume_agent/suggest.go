package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urabe-chihiro/resume-ai/internal/pipeline"
	"github.com/urabe-chihiro/resume-ai/internal/suggest"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest improvements for the current resume record",
	Long:  "Reviews the session's resume record against the target job and prints concrete suggestions for information worth adding, with a question inviting supplementary input.",
	RunE:  runSuggest,
}

var (
	suggestConfig  string
	suggestProfile string
	suggestJob     string
	suggestSession string
)

func init() {
	suggestCmd.Flags().StringVar(&suggestConfig, "config", "", "Path to config JSON file")
	suggestCmd.Flags().StringVar(&suggestProfile, "profile", "", "Path to candidate profile JSON file (required)")
	suggestCmd.Flags().StringVar(&suggestJob, "job", "", "Path to job requirements JSON file (required)")
	suggestCmd.Flags().StringVar(&suggestSession, "session", "", "Session ID")

	for _, flag := range []string{"profile", "job"} {
		if err := suggestCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(suggestCmd)
}

// sessionRecord returns the session's cached record, or one assembled from
// the profile when the cache has nothing.
func sessionRecord(ctx context.Context, a *app, profile *types.Profile, job *types.JobRequirements) *types.ResumeRecord {
	if a.sessions != nil {
		record, err := a.sessions.GetRecord(ctx, a.sessionID)
		if err == nil && record != nil {
			return record
		}
	}
	return pipeline.BuildRecord(profile, job, "", nil)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, suggestConfig, suggestSession, true)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadProfile(suggestProfile)
	if err != nil {
		return err
	}
	job, err := loadJobRequirements(suggestJob)
	if err != nil {
		return err
	}

	record := sessionRecord(ctx, a, profile, job)
	suggestions := suggest.Suggest(ctx, a.client, a.logger, record, job.JobTitle, job.JobDescription)

	return printJSON(suggestions)
}
