package pipeline

import "github.com/urabe-chihiro/resume-ai/internal/types"

// BuildRecord assembles the structured resume record from the profile, the
// target posting, and the pipeline outputs. Refined experiences replace the
// originals only when refinement actually produced entries; an empty refined
// list means the originals stand.
func BuildRecord(profile *types.Profile, job *types.JobRequirements, summary string, refined []types.WorkExperience) *types.ResumeRecord {
	experiences := profile.WorkExperiences
	if len(refined) > 0 {
		experiences = refined
	}

	record := &types.ResumeRecord{
		Name:                 profile.Name,
		Residence:            profile.Residence,
		JobTitle:             profile.JobTitle,
		Role:                 job.JobTitle,
		YearsOfExperience:    profile.YearsOfExperience,
		Summary:              summary,
		ProgrammingLanguages: profile.ProgrammingLanguages,
		Frameworks:           profile.Frameworks,
		TestingTools:         profile.TestingTools,
		DesignTools:          profile.DesignTools,
		WorkExperiences:      experiences,
		PersonalProjects:     profile.PersonalProjects,
		PortfolioURL:         profile.PortfolioURL,
	}
	record.Normalize()
	return record
}
