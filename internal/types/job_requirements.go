package types

// CompanyInfo describes the hiring company. Only the name is required; the
// remaining fields enrich the company analysis prompt when present.
type CompanyInfo struct {
	Name     string   `json:"name" validate:"required"`
	Industry string   `json:"industry,omitempty"`
	Size     string   `json:"size,omitempty"`
	Culture  string   `json:"culture,omitempty"`
	Values   []string `json:"values,omitempty"`
}

// JobRequirements is the target job posting. Immutable input to the pipeline.
type JobRequirements struct {
	JobTitle       string      `json:"job_title" validate:"required"`
	CompanyInfo    CompanyInfo `json:"company_info" validate:"required"`
	JobDescription string      `json:"job_description" validate:"required"`

	RequiredSkills   []string `json:"required_skills,omitempty"`
	PreferredSkills  []string `json:"preferred_skills,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
}
