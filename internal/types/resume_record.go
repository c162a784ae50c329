package types

import (
	"fmt"
	"strings"
)

// ResumeRecord is the assembled structured resume handed to rendering. Every
// field enumerated here must be present (with a safe zero value) when the
// record leaves the pipeline, so the renderer never defends against missing
// keys. The record is the working document for the review flows: supplement
// integration and feedback improvement replace it wholesale on success and
// leave it untouched on failure.
type ResumeRecord struct {
	Name              string `json:"name"`
	Residence         string `json:"residence"`
	JobTitle          string `json:"job_title"`
	Role              string `json:"role"` // target job title from the posting
	YearsOfExperience string `json:"years_of_experience"`
	Summary           string `json:"summary"`

	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	TestingTools         []string `json:"testing_tools"`
	DesignTools          []string `json:"design_tools"`

	WorkExperiences  []WorkExperience  `json:"work_experiences"`
	PersonalProjects []PersonalProject `json:"personal_projects"`
	PortfolioURL     string            `json:"portfolio_url"`
}

// Normalize replaces nil slices with empty ones so the marshalled record
// always carries every renderer-facing field.
func (r *ResumeRecord) Normalize() {
	if r.ProgrammingLanguages == nil {
		r.ProgrammingLanguages = []string{}
	}
	if r.Frameworks == nil {
		r.Frameworks = []string{}
	}
	if r.TestingTools == nil {
		r.TestingTools = []string{}
	}
	if r.DesignTools == nil {
		r.DesignTools = []string{}
	}
	if r.WorkExperiences == nil {
		r.WorkExperiences = []WorkExperience{}
	}
	if r.PersonalProjects == nil {
		r.PersonalProjects = []PersonalProject{}
	}
}

// PromptText serializes the record into the compact labeled-line form used by
// the review prompts. Empty fields are omitted.
func (r *ResumeRecord) PromptText() string {
	var parts []string

	if r.Name != "" {
		parts = append(parts, fmt.Sprintf("Name: %s", r.Name))
	}
	if r.JobTitle != "" {
		parts = append(parts, fmt.Sprintf("Job title: %s", r.JobTitle))
	}
	if r.Residence != "" {
		parts = append(parts, fmt.Sprintf("Residence: %s", r.Residence))
	}
	if r.YearsOfExperience != "" {
		parts = append(parts, fmt.Sprintf("Years of experience: %s", r.YearsOfExperience))
	}
	if r.Summary != "" {
		parts = append(parts, fmt.Sprintf("\nProfessional summary:\n%s", r.Summary))
	}

	if len(r.ProgrammingLanguages) > 0 {
		parts = append(parts, fmt.Sprintf("\nProgramming languages: %s", strings.Join(r.ProgrammingLanguages, ", ")))
	}
	if len(r.Frameworks) > 0 {
		parts = append(parts, fmt.Sprintf("Frameworks: %s", strings.Join(r.Frameworks, ", ")))
	}
	if len(r.TestingTools) > 0 {
		parts = append(parts, fmt.Sprintf("Testing tools: %s", strings.Join(r.TestingTools, ", ")))
	}
	if len(r.DesignTools) > 0 {
		parts = append(parts, fmt.Sprintf("Design tools: %s", strings.Join(r.DesignTools, ", ")))
	}

	if len(r.WorkExperiences) > 0 {
		parts = append(parts, "\nWork history:")
		for _, exp := range r.WorkExperiences {
			parts = append(parts, fmt.Sprintf("\n[%s - %s]", exp.CompanyName, exp.Position))
			parts = append(parts, fmt.Sprintf("Period: %s", exp.Period))
			if exp.Description != "" {
				parts = append(parts, fmt.Sprintf("Responsibilities: %s", exp.Description))
			}
		}
	}

	if len(r.PersonalProjects) > 0 {
		parts = append(parts, "\nPersonal projects:")
		for _, proj := range r.PersonalProjects {
			parts = append(parts, fmt.Sprintf("\n[%s]", proj.Title))
			if proj.Description != "" {
				parts = append(parts, fmt.Sprintf("Description: %s", proj.Description))
			}
			if len(proj.Technologies) > 0 {
				parts = append(parts, fmt.Sprintf("Technologies: %s", strings.Join(proj.Technologies, ", ")))
			}
			if proj.URL != "" {
				parts = append(parts, fmt.Sprintf("URL: %s", proj.URL))
			}
		}
	}

	if r.PortfolioURL != "" {
		parts = append(parts, fmt.Sprintf("\nPortfolio URL: %s", r.PortfolioURL))
	}

	return strings.Join(parts, "\n")
}
