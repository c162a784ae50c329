// Package pipeline sequences the multi-stage resume generation flow: company
// analysis, requirements extraction, work experience refinement, structure
// planning, and record assembly. Analysis stages are load-bearing and fail the
// run; refinement and summary generation degrade gracefully.
package pipeline

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/urabe-chihiro/resume-ai/internal/agent"
	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/refine"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

var (
	stepCompanyAnalysis = agent.Step{
		Name:        "company-analysis",
		PromptFile:  "pipeline.json",
		PromptKey:   "company-analysis",
		Inputs:      []string{"company_info", "job_description"},
		OutputField: "company_analysis",
		Tier:        llm.TierStandard,
		Temperature: 0.7,
	}
	stepRequirements = agent.Step{
		Name:        "requirements-extraction",
		PromptFile:  "pipeline.json",
		PromptKey:   "requirements-extraction",
		Inputs:      []string{"job_description", "company_analysis"},
		OutputField: "requirements_analysis",
		Tier:        llm.TierStandard,
		Temperature: 0.5,
	}
	stepStructurePlan = agent.Step{
		Name:        "structure-plan",
		PromptFile:  "pipeline.json",
		PromptKey:   "structure-plan",
		Inputs:      []string{"user_experience", "job_requirements", "company_analysis"},
		OutputField: "structure_plan",
		Tier:        llm.TierStandard,
		Temperature: 0.6,
	}
	stepSummary = agent.Step{
		Name:       "summary-generation",
		PromptFile: "pipeline.json",
		PromptKey:  "summary-generation",
		Inputs: []string{
			"appeal_points", "work_experiences", "programming_languages",
			"frameworks", "testing_tools", "design_tools", "personal_projects",
			"company_analysis", "requirements_analysis",
		},
		OutputField: "summary",
		Tier:        llm.TierAdvanced,
		Temperature: 0.7,
	}
	stepCompose = agent.Step{
		Name:        "compose-resume",
		PromptFile:  "document.json",
		PromptKey:   "compose-resume",
		Inputs:      []string{"user_input", "job_requirements", "company_analysis", "requirements_analysis", "structure_plan"},
		OutputField: "resume_markdown",
		Tier:        llm.TierAdvanced,
		Temperature: 0.7,
	}
	stepImprove = agent.Step{
		Name:        "feedback-improvement",
		PromptFile:  "document.json",
		PromptKey:   "feedback-improvement",
		Inputs:      []string{"current_resume", "feedback", "user_input", "job_requirements"},
		OutputField: "improved_resume",
		Tier:        llm.TierAdvanced,
		Temperature: 0.6,
	}
)

// Orchestrator drives the generation pipeline against a single LLM client.
// Safe for concurrent use; each run keeps its own state.
type Orchestrator struct {
	client   llm.Client
	logger   *zap.Logger
	validate *validator.Validate
}

// New creates an orchestrator. A nil logger is replaced with a no-op logger.
func New(client llm.Client, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		client:   client,
		logger:   logger,
		validate: validator.New(),
	}
}

func (o *Orchestrator) validateInputs(profile *types.Profile, job *types.JobRequirements) error {
	if err := o.validate.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := o.validate.Struct(job); err != nil {
		return fmt.Errorf("invalid job requirements: %w", err)
	}
	return nil
}

// runAnalyses executes the two analysis stages. Both are load-bearing: a
// failure in either aborts the run.
func (o *Orchestrator) runAnalyses(ctx context.Context, job *types.JobRequirements) (companyAnalysis, requirementsAnalysis string, err error) {
	posting := FormatJobPosting(job)

	out, err := stepCompanyAnalysis.Run(ctx, o.client, map[string]string{
		"company_info":    FormatCompanyInfo(job.CompanyInfo),
		"job_description": posting,
	})
	if err != nil {
		return "", "", err
	}
	companyAnalysis = out["company_analysis"]
	o.logger.Info("company analysis complete", zap.Int("chars", len(companyAnalysis)))

	out, err = stepRequirements.Run(ctx, o.client, map[string]string{
		"job_description":  posting,
		"company_analysis": companyAnalysis,
	})
	if err != nil {
		return "", "", err
	}
	requirementsAnalysis = out["requirements_analysis"]
	o.logger.Info("requirements extraction complete", zap.Int("chars", len(requirementsAnalysis)))

	return companyAnalysis, requirementsAnalysis, nil
}

func (o *Orchestrator) runRefinement(ctx context.Context, profile *types.Profile, job *types.JobRequirements, companyAnalysis, requirementsAnalysis string) []types.WorkExperience {
	if !profile.HasWorkExperience() {
		o.logger.Info("no work experience on profile, skipping refinement")
		return []types.WorkExperience{}
	}
	refined := refine.RefineExperiences(ctx, o.client, o.logger, refine.Inputs{
		WorkExperiences:      profile.WorkExperiences,
		JobTitle:             job.JobTitle,
		JobDescription:       FormatJobPosting(job),
		RequirementsAnalysis: requirementsAnalysis,
		CompanyAnalysis:      companyAnalysis,
	})
	o.logger.Info("work experience refinement complete", zap.Int("refined", len(refined)))
	return refined
}

func (o *Orchestrator) runStructurePlan(ctx context.Context, profile *types.Profile, companyAnalysis, requirementsAnalysis string) (string, error) {
	out, err := stepStructurePlan.Run(ctx, o.client, map[string]string{
		"user_experience":  FormatProfile(profile),
		"job_requirements": requirementsAnalysis,
		"company_analysis": companyAnalysis,
	})
	if err != nil {
		return "", err
	}
	return out["structure_plan"], nil
}

// Analyze validates the inputs and runs just the two analysis stages. Used by
// callers that need analyses without the rest of the pipeline.
func (o *Orchestrator) Analyze(ctx context.Context, profile *types.Profile, job *types.JobRequirements) (companyAnalysis, requirementsAnalysis string, err error) {
	if err := o.validateInputs(profile, job); err != nil {
		return "", "", err
	}
	return o.runAnalyses(ctx, job)
}

// Generate runs the full pipeline without summary generation and returns the
// accumulated stage outputs with the assembled record.
func (o *Orchestrator) Generate(ctx context.Context, profile *types.Profile, job *types.JobRequirements) (*types.PipelineResult, error) {
	if err := o.validateInputs(profile, job); err != nil {
		return nil, err
	}

	companyAnalysis, requirementsAnalysis, err := o.runAnalyses(ctx, job)
	if err != nil {
		return nil, err
	}

	refined := o.runRefinement(ctx, profile, job, companyAnalysis, requirementsAnalysis)

	plan, err := o.runStructurePlan(ctx, profile, companyAnalysis, requirementsAnalysis)
	if err != nil {
		return nil, err
	}

	return &types.PipelineResult{
		CompanyAnalysis:      companyAnalysis,
		RequirementsAnalysis: requirementsAnalysis,
		StructurePlan:        plan,
		RefinedExperiences:   refined,
		Record:               BuildRecord(profile, job, "", refined),
	}, nil
}

// GenerateSummary produces a professional summary from the profile and the
// two analyses.
func (o *Orchestrator) GenerateSummary(ctx context.Context, profile *types.Profile, companyAnalysis, requirementsAnalysis string) (string, error) {
	out, err := stepSummary.Run(ctx, o.client, map[string]string{
		"appeal_points":         orNone(profile.AppealPoints),
		"work_experiences":      FormatWorkExperiences(profile.WorkExperiences),
		"programming_languages": joinOrNone(profile.ProgrammingLanguages),
		"frameworks":            joinOrNone(profile.Frameworks),
		"testing_tools":         joinOrNone(profile.TestingTools),
		"design_tools":          joinOrNone(profile.DesignTools),
		"personal_projects":     FormatPersonalProjects(profile.PersonalProjects),
		"company_analysis":      companyAnalysis,
		"requirements_analysis": requirementsAnalysis,
	})
	if err != nil {
		return "", err
	}
	return out["summary"], nil
}

// GenerateWithSummary runs the full pipeline with summary generation. After
// the analysis stages, refinement-plus-planning and summary generation run in
// parallel. A summary failure is degraded to an empty summary; planning
// failures abort the run.
func (o *Orchestrator) GenerateWithSummary(ctx context.Context, profile *types.Profile, job *types.JobRequirements) (*types.PipelineResult, error) {
	if err := o.validateInputs(profile, job); err != nil {
		return nil, err
	}

	companyAnalysis, requirementsAnalysis, err := o.runAnalyses(ctx, job)
	if err != nil {
		return nil, err
	}

	var (
		refined []types.WorkExperience
		plan    string
		summary string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refined = o.runRefinement(gctx, profile, job, companyAnalysis, requirementsAnalysis)
		var planErr error
		plan, planErr = o.runStructurePlan(gctx, profile, companyAnalysis, requirementsAnalysis)
		return planErr
	})
	g.Go(func() error {
		s, summaryErr := o.GenerateSummary(gctx, profile, companyAnalysis, requirementsAnalysis)
		if summaryErr != nil {
			o.logger.Warn("summary generation failed, continuing without summary", zap.Error(summaryErr))
			return nil
		}
		summary = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PipelineResult{
		CompanyAnalysis:      companyAnalysis,
		RequirementsAnalysis: requirementsAnalysis,
		StructurePlan:        plan,
		RefinedExperiences:   refined,
		Summary:              summary,
		Record:               BuildRecord(profile, job, summary, refined),
	}, nil
}

// ComposeDocument turns a pipeline result into a Markdown resume document.
func (o *Orchestrator) ComposeDocument(ctx context.Context, profile *types.Profile, job *types.JobRequirements, result *types.PipelineResult) (string, error) {
	userInput := FormatProfile(profile)
	if result.Record != nil {
		userInput = result.Record.PromptText()
	}

	out, err := stepCompose.Run(ctx, o.client, map[string]string{
		"user_input":            userInput,
		"job_requirements":      FormatJobPosting(job),
		"company_analysis":      result.CompanyAnalysis,
		"requirements_analysis": result.RequirementsAnalysis,
		"structure_plan":        result.StructurePlan,
	})
	if err != nil {
		return "", err
	}
	return out["resume_markdown"], nil
}

// ImproveDocument revises a composed document according to reviewer feedback.
func (o *Orchestrator) ImproveDocument(ctx context.Context, currentResume, feedback string, profile *types.Profile, job *types.JobRequirements) (string, error) {
	out, err := stepImprove.Run(ctx, o.client, map[string]string{
		"current_resume":   currentResume,
		"feedback":         feedback,
		"user_input":       FormatProfile(profile),
		"job_requirements": FormatJobPosting(job),
	})
	if err != nil {
		return "", err
	}
	return out["improved_resume"], nil
}
