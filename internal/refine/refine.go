// Package refine rewrites work experience descriptions toward a target job.
// Refinement is an enhancement stage: any failure degrades to the candidate's
// original descriptions instead of failing the run.
package refine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/extract"
	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/prompts"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// Inputs carries everything the refinement prompt consumes.
type Inputs struct {
	WorkExperiences      []types.WorkExperience
	JobTitle             string
	JobDescription       string
	RequirementsAnalysis string
	CompanyAnalysis      string
}

// RefineExperiences returns job-tailored rewrites of the given work
// experiences, or an empty slice when there is nothing to refine or the model
// output could not be used. It never returns an error; callers treat an empty
// result as "keep the originals".
func RefineExperiences(ctx context.Context, client llm.Client, logger *zap.Logger, in Inputs) []types.WorkExperience {
	if len(in.WorkExperiences) == 0 {
		return []types.WorkExperience{}
	}

	template, err := prompts.Get("pipeline.json", "work-experience-refinement")
	if err != nil {
		logger.Warn("refinement prompt unavailable, keeping original experiences", zap.Error(err))
		return []types.WorkExperience{}
	}

	prompt, err := prompts.FormatStrict(template, map[string]string{
		"work_experiences":      FormatExperiences(in.WorkExperiences),
		"job_title":             in.JobTitle,
		"job_requirements":      in.JobDescription,
		"requirements_analysis": in.RequirementsAnalysis,
		"company_analysis":      in.CompanyAnalysis,
	})
	if err != nil {
		logger.Warn("refinement prompt formatting failed, keeping original experiences", zap.Error(err))
		return []types.WorkExperience{}
	}

	resp, err := client.Generate(ctx, prompt, llm.TierAdvanced, 0.4)
	if err != nil {
		logger.Warn("refinement generation failed, keeping original experiences", zap.Error(err))
		return []types.WorkExperience{}
	}

	var parsed struct {
		WorkExperiences []types.WorkExperience `json:"work_experiences"`
	}
	if err := extract.Into(resp.Text(), &parsed); err != nil {
		logger.Warn("refinement response was not usable JSON, keeping original experiences", zap.Error(err))
		return []types.WorkExperience{}
	}
	if parsed.WorkExperiences == nil {
		return []types.WorkExperience{}
	}
	for i, exp := range parsed.WorkExperiences {
		if exp.CompanyName == "" || exp.Position == "" || exp.Period == "" {
			logger.Warn("refined experience is missing identity fields, keeping original experiences",
				zap.Int("index", i))
			return []types.WorkExperience{}
		}
	}

	return parsed.WorkExperiences
}

// FormatExperiences serializes work experiences into the labeled-line form
// every prompt in the pipeline consumes. Entries without a description get
// no Description line.
func FormatExperiences(experiences []types.WorkExperience) string {
	var parts []string
	for i, exp := range experiences {
		parts = append(parts, fmt.Sprintf("Experience %d:", i+1))
		parts = append(parts, fmt.Sprintf("Company: %s", exp.CompanyName))
		parts = append(parts, fmt.Sprintf("Position: %s", exp.Position))
		parts = append(parts, fmt.Sprintf("Period: %s", exp.Period))
		if exp.Description != "" {
			parts = append(parts, fmt.Sprintf("Description: %s", exp.Description))
		}
		parts = append(parts, "")
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}
