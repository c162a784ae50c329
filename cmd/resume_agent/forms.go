package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Manage stored form data",
	Long:  "Saves and inspects submitted profile and job requirement forms in the database. Identical resubmissions are deduplicated by content hash.",
}

var formsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save profile and job requirement files to the database",
	RunE:  runFormsSave,
}

var formsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the most recently stored forms",
	RunE:  runFormsShow,
}

var (
	formsConfig  string
	formsProfile string
	formsJob     string
)

func init() {
	formsCmd.PersistentFlags().StringVar(&formsConfig, "config", "", "Path to config JSON file")
	formsSaveCmd.Flags().StringVar(&formsProfile, "profile", "", "Path to candidate profile JSON file")
	formsSaveCmd.Flags().StringVar(&formsJob, "job", "", "Path to job requirements JSON file")

	formsCmd.AddCommand(formsSaveCmd)
	formsCmd.AddCommand(formsShowCmd)
	rootCmd.AddCommand(formsCmd)
}

func runFormsSave(_ *cobra.Command, _ []string) error {
	if formsProfile == "" && formsJob == "" {
		return fmt.Errorf("nothing to save: pass --profile and/or --job")
	}

	ctx := context.Background()
	a, err := newApp(ctx, formsConfig, "", false)
	if err != nil {
		return err
	}
	defer a.close()

	if a.database == nil {
		return fmt.Errorf("database required: set database_url in config or DATABASE_URL environment variable")
	}

	if formsProfile != "" {
		profile, err := loadProfile(formsProfile)
		if err != nil {
			return err
		}
		id, err := a.database.SaveProfile(ctx, profile)
		if err != nil {
			return err
		}
		fmt.Printf("profile saved: %s\n", id)
	}

	if formsJob != "" {
		job, err := loadJobRequirements(formsJob)
		if err != nil {
			return err
		}
		id, err := a.database.SaveJobRequirements(ctx, job)
		if err != nil {
			return err
		}
		fmt.Printf("job requirements saved: %s\n", id)
	}

	return nil
}

func runFormsShow(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, formsConfig, "", false)
	if err != nil {
		return err
	}
	defer a.close()

	if a.database == nil {
		return fmt.Errorf("database required: set database_url in config or DATABASE_URL environment variable")
	}

	profile, err := a.database.GetLatestProfile(ctx)
	if err != nil {
		return err
	}
	job, err := a.database.GetLatestJobRequirements(ctx)
	if err != nil {
		return err
	}

	return printJSON(struct {
		Profile         *types.Profile         `json:"profile"`
		JobRequirements *types.JobRequirements `json:"job_requirements"`
	}{profile, job})
}
