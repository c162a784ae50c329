package supplement

import (
	"context"
	"errors"
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
	return llm.TextResponse{Content: f.reply}, nil
}

func (f *fakeClient) Close() error { return nil }

func sampleRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		Name:                 "Tanaka",
		JobTitle:             "Backend Engineer",
		Summary:              "Five years of Go development.",
		ProgrammingLanguages: []string{"Go"},
		Frameworks:           []string{},
		TestingTools:         []string{},
		DesignTools:          []string{},
		WorkExperiences:      []types.WorkExperience{},
		PersonalProjects:     []types.PersonalProject{},
	}
}

func TestIntegrate(t *testing.T) {
	client := &fakeClient{reply: `Here is the merged record:
{"name": "Tanaka", "job_title": "Backend Engineer", "summary": "Five years of Go development, including AWS operations.", "programming_languages": ["Go"], "frameworks": ["Echo"]}`}

	got := Integrate(context.Background(), client, zap.NewNop(), sampleRecord(), "Operated services on AWS using Echo.")
	require.NotNil(t, got)
	assert.Equal(t, "Five years of Go development, including AWS operations.", got.Summary)
	assert.Equal(t, []string{"Echo"}, got.Frameworks)

	// The model did not return these keys; normalization fills them in.
	assert.NotNil(t, got.TestingTools)
	assert.NotNil(t, got.WorkExperiences)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Operated services on AWS using Echo.")
	assert.Contains(t, client.prompts[0], "Tanaka")
}

func TestIntegrate_BlankSupplementSkipsModel(t *testing.T) {
	client := &fakeClient{}
	record := sampleRecord()

	for _, text := range []string{"", "   ", "\n\t"} {
		got := Integrate(context.Background(), client, zap.NewNop(), record, text)
		assert.Same(t, record, got)
	}
	assert.Zero(t, client.calls)
}

func TestIntegrate_GenerationFailureKeepsRecord(t *testing.T) {
	client := &fakeClient{err: errors.New("connection reset")}
	record := sampleRecord()

	got := Integrate(context.Background(), client, zap.NewNop(), record, "add this")
	assert.Same(t, record, got)
}

func TestIntegrate_UnparseableResponseKeepsRecord(t *testing.T) {
	client := &fakeClient{reply: "I'm sorry, I cannot produce JSON right now."}
	record := sampleRecord()

	got := Integrate(context.Background(), client, zap.NewNop(), record, "add this")
	assert.Same(t, record, got)
	assert.Equal(t, "Five years of Go development.", got.Summary)
}
