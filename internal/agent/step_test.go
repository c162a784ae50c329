package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/prompts"
)

// fakeClient records the prompts it receives and replies from a scripted queue.
type fakeClient struct {
	replies []string
	err     error

	prompts []string
	tiers   []llm.ModelTier
	temps   []float32
}

func (f *fakeClient) Generate(_ context.Context, prompt string, tier llm.ModelTier, temperature float32) (llm.Response, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	f.temps = append(f.temps, temperature)
	if f.err != nil {
		return nil, f.err
	}
	reply := ""
	if len(f.replies) > 0 {
		reply = f.replies[0]
		f.replies = f.replies[1:]
	}
	return llm.TextResponse{Content: reply}, nil
}

func (f *fakeClient) Close() error { return nil }

func companyAnalysisStep() *Step {
	return &Step{
		Name:        "company-analysis",
		PromptFile:  "pipeline.json",
		PromptKey:   "company-analysis",
		Inputs:      []string{"company_info", "job_description"},
		OutputField: "analysis",
		Tier:        llm.TierStandard,
		Temperature: 0.7,
	}
}

func TestStepRun(t *testing.T) {
	client := &fakeClient{replies: []string{"the analysis"}}
	step := companyAnalysisStep()

	out, err := step.Run(context.Background(), client, map[string]string{
		"company_info":    "Acme Corp, logistics SaaS",
		"job_description": "Backend engineer, Go and PostgreSQL",
		"unrelated":       "must not leak into the prompt",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"analysis": "the analysis"}, out)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Acme Corp, logistics SaaS")
	assert.Contains(t, client.prompts[0], "Backend engineer, Go and PostgreSQL")
	assert.NotContains(t, client.prompts[0], "must not leak")
	assert.NotContains(t, client.prompts[0], "{{.")
	assert.Equal(t, llm.TierStandard, client.tiers[0])
	assert.Equal(t, float32(0.7), client.temps[0])
}

func TestStepRun_MissingInputBecomesEmpty(t *testing.T) {
	client := &fakeClient{replies: []string{"ok"}}
	step := companyAnalysisStep()

	_, err := step.Run(context.Background(), client, map[string]string{
		"company_info": "Acme Corp",
	})
	require.NoError(t, err)
	assert.Contains(t, client.prompts[0], "Acme Corp")
	assert.NotContains(t, client.prompts[0], "{{.job_description}}")
}

func TestStepRun_ClientErrorPropagates(t *testing.T) {
	wantErr := errors.New("rate limited")
	client := &fakeClient{err: wantErr}
	step := companyAnalysisStep()

	_, err := step.Run(context.Background(), client, map[string]string{})
	require.Error(t, err)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "company-analysis", stepErr.Step)
	assert.ErrorIs(t, err, wantErr)
}

func TestStepRun_UnknownPromptKey(t *testing.T) {
	client := &fakeClient{}
	step := companyAnalysisStep()
	step.PromptKey = "no-such-key"

	_, err := step.Run(context.Background(), client, map[string]string{})
	require.Error(t, err)
	assert.Empty(t, client.prompts, "prompt must not reach the model")
}

func TestStepRun_UndeclaredPlaceholderFails(t *testing.T) {
	// Declaring fewer inputs than the template uses must fail before the
	// model sees a prompt with raw placeholders.
	client := &fakeClient{}
	step := companyAnalysisStep()
	step.Inputs = []string{"company_info"}

	_, err := step.Run(context.Background(), client, map[string]string{
		"company_info": "Acme Corp",
	})
	require.Error(t, err)
	var tmplErr *prompts.TemplateError
	assert.ErrorAs(t, err, &tmplErr)
	assert.Empty(t, client.prompts)
}

func TestStepRun_DoesNotMutateInputs(t *testing.T) {
	client := &fakeClient{replies: []string{"out"}}
	step := companyAnalysisStep()

	in := map[string]string{"company_info": "Acme", "job_description": "Go"}
	_, err := step.Run(context.Background(), client, in)
	require.NoError(t, err)
	assert.Len(t, in, 2)
	_, hasOutput := in["analysis"]
	assert.False(t, hasOutput)
}

func TestStepRun_PromptTemplatesAreComplete(t *testing.T) {
	// Every prompt file ships with the binary; keys referenced by steps must
	// exist and placeholders must be well-formed.
	for _, file := range []string{"pipeline.json", "document.json", "review.json"} {
		keys, err := prompts.List(file)
		require.NoError(t, err, file)
		assert.NotEmpty(t, keys, file)
		for _, key := range keys {
			template, err := prompts.Get(file, key)
			require.NoError(t, err)
			assert.False(t, strings.Contains(template, "{{ ."), "%s/%s has a malformed placeholder", file, key)
		}
	}
}
