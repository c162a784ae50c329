// Package supplement merges candidate-provided supplementary information into
// an existing resume record. Integration is best-effort: the record is
// replaced wholesale when the model returns a usable revision and left
// untouched otherwise.
package supplement

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/extract"
	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/prompts"
	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// Integrate folds the supplement text into the record and returns the
// resulting record. Blank supplement text returns the record unchanged
// without calling the model. On any failure the original record is returned;
// integration never errors out a session.
func Integrate(ctx context.Context, client llm.Client, logger *zap.Logger, record *types.ResumeRecord, supplementText string) *types.ResumeRecord {
	if strings.TrimSpace(supplementText) == "" {
		return record
	}

	template, err := prompts.Get("review.json", "supplement-integration")
	if err != nil {
		logger.Warn("supplement prompt unavailable, keeping record unchanged", zap.Error(err))
		return record
	}

	prompt, err := prompts.FormatStrict(template, map[string]string{
		"resume_data":     record.PromptText(),
		"supplement_info": supplementText,
	})
	if err != nil {
		logger.Warn("supplement prompt formatting failed, keeping record unchanged", zap.Error(err))
		return record
	}

	resp, err := client.Generate(ctx, prompt, llm.TierStandard, 0.4)
	if err != nil {
		logger.Warn("supplement integration generation failed, keeping record unchanged", zap.Error(err))
		return record
	}

	var updated types.ResumeRecord
	if err := extract.Into(resp.Text(), &updated); err != nil {
		logger.Warn("supplement integration response was not usable JSON, keeping record unchanged", zap.Error(err))
		return record
	}

	updated.Normalize()
	return &updated
}
