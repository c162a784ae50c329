// Package suggest produces on-demand improvement suggestions for a resume
// record. Suggestions are advisory; failures degrade to an empty suggestion
// list with a generic prompt rather than an error.
package suggest

import (
	"context"

	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/extract"
	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/prompts"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// DefaultPromptText is shown when the model did not supply a tailored
// question inviting supplementary input.
const DefaultPromptText = "Please enter supplementary information or experience you would like to add."

// Suggest reviews the record against the target job and returns improvement
// suggestions. A fresh set is generated on every call. Failures return an
// empty suggestion list with the default prompt text; Suggest never errors.
func Suggest(ctx context.Context, client llm.Client, logger *zap.Logger, record *types.ResumeRecord, jobTitle, jobDescription string) *types.Suggestions {
	fallback := &types.Suggestions{Suggestions: []string{}, PromptText: DefaultPromptText}

	template, err := prompts.Get("review.json", "improvement-suggestion")
	if err != nil {
		logger.Warn("suggestion prompt unavailable", zap.Error(err))
		return fallback
	}

	prompt, err := prompts.FormatStrict(template, map[string]string{
		"resume_data":     record.PromptText(),
		"job_title":       jobTitle,
		"job_description": jobDescription,
	})
	if err != nil {
		logger.Warn("suggestion prompt formatting failed", zap.Error(err))
		return fallback
	}

	resp, err := client.Generate(ctx, prompt, llm.TierLite, 0.6)
	if err != nil {
		logger.Warn("suggestion generation failed", zap.Error(err))
		return fallback
	}

	var parsed types.Suggestions
	if err := extract.Into(resp.Text(), &parsed); err != nil {
		logger.Warn("suggestion response was not usable JSON", zap.Error(err))
		return fallback
	}

	if parsed.Suggestions == nil {
		parsed.Suggestions = []string{}
	}
	if parsed.PromptText == "" {
		parsed.PromptText = DefaultPromptText
	}
	return &parsed
}
