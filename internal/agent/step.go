// Package agent defines the generation step primitive the pipeline is built
// from. A Step is fully described by data: which prompt it uses, which named
// inputs it consumes, which output field it produces, and how the model is
// sampled. Stage behavior differences live in prompt text and parameters, not
// in per-stage types.
package agent

import (
	"context"
	"fmt"

	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/prompts"
)

// Step is one LLM generation stage.
type Step struct {
	// Name identifies the step in logs and errors.
	Name string
	// PromptFile and PromptKey locate the template in the embedded prompt set.
	PromptFile string
	PromptKey  string
	// Inputs lists the context fields the template consumes. Fields missing
	// from the provided context are substituted as empty strings.
	Inputs []string
	// OutputField is the context key the step's output is stored under.
	OutputField string
	// Tier selects the model, Temperature the sampling temperature.
	Tier        llm.ModelTier
	Temperature float32
}

// StepError wraps a failure in a named step so callers can tell which stage
// of a multi-step run broke.
type StepError struct {
	Step  string
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// Run executes the step against the given context fields and returns the
// produced output keyed by OutputField. The input map is not modified.
func (s *Step) Run(ctx context.Context, client llm.Client, inputs map[string]string) (map[string]string, error) {
	template, err := prompts.Get(s.PromptFile, s.PromptKey)
	if err != nil {
		return nil, &StepError{Step: s.Name, Cause: err}
	}

	data := make(map[string]string, len(s.Inputs))
	for _, field := range s.Inputs {
		data[field] = inputs[field]
	}

	prompt, err := prompts.FormatStrict(template, data)
	if err != nil {
		return nil, &StepError{Step: s.Name, Cause: err}
	}

	resp, err := client.Generate(ctx, prompt, s.Tier, s.Temperature)
	if err != nil {
		return nil, &StepError{Step: s.Name, Cause: err}
	}

	return map[string]string{s.OutputField: resp.Text()}, nil
}
