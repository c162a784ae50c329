// Package render turns an assembled resume record into a Markdown document.
// Rendering is deterministic: the same record always yields the same bytes.
package render

import (
	"fmt"
	"strings"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// Markdown renders the record as a Markdown resume. Sections with no content
// are omitted entirely; section order is fixed.
func Markdown(record *types.ResumeRecord) string {
	var b strings.Builder

	title := record.Name
	if title == "" {
		title = "Resume"
	}
	fmt.Fprintf(&b, "# %s\n", title)

	writeBasics(&b, record)
	writeSummary(&b, record)
	writeSkills(&b, record)
	writeWorkExperiences(&b, record)
	writePersonalProjects(&b, record)

	if record.PortfolioURL != "" {
		b.WriteString("\n## Portfolio\n\n")
		fmt.Fprintf(&b, "%s\n", record.PortfolioURL)
	}

	return b.String()
}

func writeBasics(b *strings.Builder, record *types.ResumeRecord) {
	var lines []string
	if record.JobTitle != "" {
		lines = append(lines, fmt.Sprintf("- Current title: %s", record.JobTitle))
	}
	if record.Role != "" {
		lines = append(lines, fmt.Sprintf("- Target role: %s", record.Role))
	}
	if record.YearsOfExperience != "" {
		lines = append(lines, fmt.Sprintf("- Years of experience: %s", record.YearsOfExperience))
	}
	if record.Residence != "" {
		lines = append(lines, fmt.Sprintf("- Residence: %s", record.Residence))
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func writeSummary(b *strings.Builder, record *types.ResumeRecord) {
	if record.Summary == "" {
		return
	}
	b.WriteString("\n## Summary\n\n")
	b.WriteString(strings.TrimSpace(record.Summary))
	b.WriteString("\n")
}

func writeSkills(b *strings.Builder, record *types.ResumeRecord) {
	groups := []struct {
		label  string
		values []string
	}{
		{"Programming languages", record.ProgrammingLanguages},
		{"Frameworks", record.Frameworks},
		{"Testing tools", record.TestingTools},
		{"Design tools", record.DesignTools},
	}

	any := false
	for _, g := range groups {
		if len(g.values) > 0 {
			any = true
			break
		}
	}
	if !any {
		return
	}

	b.WriteString("\n## Skills\n\n")
	for _, g := range groups {
		if len(g.values) == 0 {
			continue
		}
		fmt.Fprintf(b, "- **%s**: %s\n", g.label, strings.Join(g.values, ", "))
	}
}

func writeWorkExperiences(b *strings.Builder, record *types.ResumeRecord) {
	if len(record.WorkExperiences) == 0 {
		return
	}
	b.WriteString("\n## Work Experience\n")
	for _, exp := range record.WorkExperiences {
		fmt.Fprintf(b, "\n### %s\n\n", exp.CompanyName)
		fmt.Fprintf(b, "**%s** (%s)\n", exp.Position, exp.Period)
		if exp.Description != "" {
			fmt.Fprintf(b, "\n%s\n", strings.TrimSpace(exp.Description))
		}
	}
}

func writePersonalProjects(b *strings.Builder, record *types.ResumeRecord) {
	if len(record.PersonalProjects) == 0 {
		return
	}
	b.WriteString("\n## Personal Projects\n")
	for _, proj := range record.PersonalProjects {
		fmt.Fprintf(b, "\n### %s\n", proj.Title)
		if proj.Description != "" {
			fmt.Fprintf(b, "\n%s\n", strings.TrimSpace(proj.Description))
		}
		if len(proj.Technologies) > 0 {
			fmt.Fprintf(b, "\nTechnologies: %s\n", strings.Join(proj.Technologies, ", "))
		}
		if proj.URL != "" {
			fmt.Fprintf(b, "\n%s\n", proj.URL)
		}
	}
}
