package refine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

type fakeClient struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeClient) Generate(_ context.Context, prompt string, _ llm.ModelTier, _ float32) (llm.Response, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	return llm.RawResponse{Value: f.reply}, nil
}

func (f *fakeClient) Close() error { return nil }

func sampleExperiences() []types.WorkExperience {
	return []types.WorkExperience{
		{CompanyName: "Acme", Position: "Engineer", Period: "2020-2023", Description: "Built internal tools."},
		{CompanyName: "Globex", Position: "Senior Engineer", Period: "2023-", Description: "Led the payments team."},
	}
}

func sampleInputs() Inputs {
	return Inputs{
		WorkExperiences:      sampleExperiences(),
		JobTitle:             "Backend Engineer",
		JobDescription:       "Go services at scale",
		RequirementsAnalysis: "needs Go and SQL",
		CompanyAnalysis:      "fast-moving product company",
	}
}

func TestRefineExperiences(t *testing.T) {
	client := &fakeClient{reply: `{"work_experiences": [
		{"company_name": "Acme", "position": "Engineer", "period": "2020-2023", "description": "Built Go services handling 1M requests/day."},
		{"company_name": "Globex", "position": "Senior Engineer", "period": "2023-", "description": "Led a team of 5 building payment APIs in Go."}
	]}`}

	got := RefineExperiences(context.Background(), client, zap.NewNop(), sampleInputs())
	require.Len(t, got, 2)
	assert.Equal(t, "Acme", got[0].CompanyName)
	assert.Equal(t, "Built Go services handling 1M requests/day.", got[0].Description)
	assert.Equal(t, "Led a team of 5 building payment APIs in Go.", got[1].Description)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Built internal tools.")
	assert.Contains(t, client.prompts[0], "Backend Engineer")
}

func TestRefineExperiences_NoExperiencesSkipsModel(t *testing.T) {
	client := &fakeClient{}
	got := RefineExperiences(context.Background(), client, zap.NewNop(), Inputs{JobTitle: "Backend Engineer"})
	assert.Empty(t, got)
	assert.Zero(t, client.calls)
}

func TestRefineExperiences_GenerationFailureReturnsEmpty(t *testing.T) {
	client := &fakeClient{err: errors.New("deadline exceeded")}
	got := RefineExperiences(context.Background(), client, zap.NewNop(), sampleInputs())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRefineExperiences_UnparseableResponseReturnsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"plain prose", "I rewrote the experiences as follows: ..."},
		{"broken JSON", `{"work_experiences": [{"company_name": }`},
		{"missing key", `{"experiences": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{reply: tt.reply}
			got := RefineExperiences(context.Background(), client, zap.NewNop(), sampleInputs())
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestRefineExperiences_MissingIdentityFieldReturnsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no period", `{"work_experiences": [{"company_name": "Acme", "position": "Engineer", "description": "Built Go services."}]}`},
		{"no position", `{"work_experiences": [{"company_name": "Acme", "period": "2020-2023", "description": "Built Go services."}]}`},
		{"no company", `{"work_experiences": [{"position": "Engineer", "period": "2020-2023", "description": "Built Go services."}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{reply: tt.reply}
			got := RefineExperiences(context.Background(), client, zap.NewNop(), sampleInputs())
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestFormatExperiences(t *testing.T) {
	text := FormatExperiences(sampleExperiences())
	assert.Contains(t, text, "Experience 1:")
	assert.Contains(t, text, "Company: Acme")
	assert.Contains(t, text, "Experience 2:")
	assert.Contains(t, text, "Period: 2023-")
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestFormatExperiences_OmitsEmptyDescription(t *testing.T) {
	text := FormatExperiences([]types.WorkExperience{
		{CompanyName: "Acme", Position: "Engineer", Period: "2020-2023"},
	})
	assert.Contains(t, text, "Company: Acme")
	assert.NotContains(t, text, "Description:")
}
