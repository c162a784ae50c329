package pipeline

import (
	"fmt"
	"strings"

	"github.com/urabe-chihiro/resume-ai/internal/refine"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// noneProvided marks fields the candidate left empty so prompts never carry
// blank sections the model might hallucinate into.
const noneProvided = "None provided"

func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return noneProvided
	}
	return value
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return noneProvided
	}
	return strings.Join(values, ", ")
}

// FormatCompanyInfo serializes the hiring company description for the
// company analysis prompt.
func FormatCompanyInfo(info types.CompanyInfo) string {
	parts := []string{fmt.Sprintf("Company name: %s", info.Name)}
	if info.Industry != "" {
		parts = append(parts, fmt.Sprintf("Industry: %s", info.Industry))
	}
	if info.Size != "" {
		parts = append(parts, fmt.Sprintf("Company size: %s", info.Size))
	}
	if info.Culture != "" {
		parts = append(parts, fmt.Sprintf("Culture: %s", info.Culture))
	}
	if len(info.Values) > 0 {
		parts = append(parts, fmt.Sprintf("Values: %s", strings.Join(info.Values, ", ")))
	}
	return strings.Join(parts, "\n")
}

// FormatJobPosting serializes the full job posting, including the structured
// skill lists when the posting carries them.
func FormatJobPosting(job *types.JobRequirements) string {
	parts := []string{
		fmt.Sprintf("Job title: %s", job.JobTitle),
		"",
		job.JobDescription,
	}
	if len(job.RequiredSkills) > 0 {
		parts = append(parts, "", fmt.Sprintf("Required skills: %s", strings.Join(job.RequiredSkills, ", ")))
	}
	if len(job.PreferredSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Preferred skills: %s", strings.Join(job.PreferredSkills, ", ")))
	}
	if len(job.Responsibilities) > 0 {
		parts = append(parts, fmt.Sprintf("Responsibilities: %s", strings.Join(job.Responsibilities, "; ")))
	}
	if len(job.Qualifications) > 0 {
		parts = append(parts, fmt.Sprintf("Qualifications: %s", strings.Join(job.Qualifications, "; ")))
	}
	return strings.Join(parts, "\n")
}

// FormatWorkExperiences serializes the candidate's work history, or the
// explicit empty marker when there is none.
func FormatWorkExperiences(experiences []types.WorkExperience) string {
	if len(experiences) == 0 {
		return noneProvided
	}
	return refine.FormatExperiences(experiences)
}

// FormatPersonalProjects serializes personal projects, or the explicit empty
// marker when there are none.
func FormatPersonalProjects(projects []types.PersonalProject) string {
	if len(projects) == 0 {
		return noneProvided
	}
	var parts []string
	for i, proj := range projects {
		parts = append(parts, fmt.Sprintf("Project %d: %s", i+1, proj.Title))
		if proj.Description != "" {
			parts = append(parts, fmt.Sprintf("Description: %s", proj.Description))
		}
		if len(proj.Technologies) > 0 {
			parts = append(parts, fmt.Sprintf("Technologies: %s", strings.Join(proj.Technologies, ", ")))
		}
		if proj.URL != "" {
			parts = append(parts, fmt.Sprintf("URL: %s", proj.URL))
		}
		parts = append(parts, "")
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// FormatProfile serializes the whole candidate profile for prompts that take
// the candidate as a single block of text.
func FormatProfile(profile *types.Profile) string {
	parts := []string{
		fmt.Sprintf("Name: %s", profile.Name),
		fmt.Sprintf("Current job title: %s", orNone(profile.JobTitle)),
		fmt.Sprintf("Years of experience: %s", orNone(profile.YearsOfExperience)),
		fmt.Sprintf("Residence: %s", orNone(profile.Residence)),
		"",
		fmt.Sprintf("Appeal points: %s", orNone(profile.AppealPoints)),
		"",
		fmt.Sprintf("Programming languages: %s", joinOrNone(profile.ProgrammingLanguages)),
		fmt.Sprintf("Frameworks: %s", joinOrNone(profile.Frameworks)),
		fmt.Sprintf("Testing tools: %s", joinOrNone(profile.TestingTools)),
		fmt.Sprintf("Design tools: %s", joinOrNone(profile.DesignTools)),
		"",
		"Work history:",
		FormatWorkExperiences(profile.WorkExperiences),
		"",
		"Personal projects:",
		FormatPersonalProjects(profile.PersonalProjects),
	}
	if profile.PortfolioURL != "" {
		parts = append(parts, "", fmt.Sprintf("Portfolio URL: %s", profile.PortfolioURL))
	}
	return strings.Join(parts, "\n")
}
