package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

func TestBuildRecord(t *testing.T) {
	profile := testProfile()
	job := testJob()

	refined := []types.WorkExperience{
		{CompanyName: "Acme", Position: "Engineer", Period: "2020-2023", Description: "Refined."},
	}
	record := BuildRecord(profile, job, "a summary", refined)

	assert.Equal(t, "Tanaka", record.Name)
	assert.Equal(t, "Software Engineer", record.JobTitle)
	assert.Equal(t, "Backend Engineer", record.Role)
	assert.Equal(t, "a summary", record.Summary)
	require.Len(t, record.WorkExperiences, 1)
	assert.Equal(t, "Refined.", record.WorkExperiences[0].Description)

	// Empty refinement output leaves the originals in place.
	record = BuildRecord(profile, job, "", []types.WorkExperience{})
	require.Len(t, record.WorkExperiences, 1)
	assert.Equal(t, "Built internal tools.", record.WorkExperiences[0].Description)
}

func TestBuildRecord_NormalizesEmptyFields(t *testing.T) {
	profile := &types.Profile{Name: "Tanaka"}
	record := BuildRecord(profile, testJob(), "", nil)

	assert.NotNil(t, record.ProgrammingLanguages)
	assert.NotNil(t, record.Frameworks)
	assert.NotNil(t, record.TestingTools)
	assert.NotNil(t, record.DesignTools)
	assert.NotNil(t, record.WorkExperiences)
	assert.NotNil(t, record.PersonalProjects)
	assert.Empty(t, record.Summary)
}
