package types

// PipelineResult accumulates the outputs of one generation run. Each stage
// appends its output; nothing is ever removed. A new run builds a fresh
// result.
type PipelineResult struct {
	CompanyAnalysis      string           `json:"company_analysis"`
	RequirementsAnalysis string           `json:"requirements_analysis"`
	StructurePlan        string           `json:"structure_plan"`
	RefinedExperiences   []WorkExperience `json:"refined_work_experiences"`
	Record               *ResumeRecord    `json:"resume_record"`
	Summary              string           `json:"summary,omitempty"`
}

// Suggestions is the on-demand improvement suggestion set. Regenerated each
// time it is requested; holds no identity across regenerations.
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
	PromptText  string   `json:"prompt_text"`
}
