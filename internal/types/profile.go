// Package types defines the shared data structures for the resume generation pipeline.
package types

// WorkExperience is a single work history entry. Owned by a Profile; the
// refinement stage may produce a replacement list but never mutates the
// original entries.
type WorkExperience struct {
	CompanyName string `json:"company_name" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Period      string `json:"period" validate:"required"` // free text, not validated as a date range
	Description string `json:"description,omitempty"`
}

// PersonalProject is a personal development project entry.
type PersonalProject struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Date         string   `json:"date,omitempty"`
}

// Profile is the candidate's submitted profile. It is immutable once handed to
// the pipeline; a new submission supersedes it wholesale.
type Profile struct {
	Name              string `json:"name" validate:"required"`
	Residence         string `json:"residence,omitempty"`
	JobTitle          string `json:"job_title,omitempty"`
	YearsOfExperience string `json:"years_of_experience,omitempty"`
	AppealPoints      string `json:"appeal_points,omitempty"`

	ProgrammingLanguages []string `json:"programming_languages,omitempty"`
	Frameworks           []string `json:"frameworks,omitempty"`
	TestingTools         []string `json:"testing_tools,omitempty"`
	DesignTools          []string `json:"design_tools,omitempty"`

	WorkExperiences  []WorkExperience  `json:"work_experiences,omitempty" validate:"dive"`
	PersonalProjects []PersonalProject `json:"personal_projects,omitempty" validate:"dive"`
	PortfolioURL     string            `json:"portfolio_url,omitempty"`
}

// HasWorkExperience reports whether the profile carries any work history.
// The refinement stage is skipped entirely when this is false.
func (p *Profile) HasWorkExperience() bool {
	return len(p.WorkExperiences) > 0
}
