package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseVariants(t *testing.T) {
	var r Response = TextResponse{Content: "from provider"}
	assert.Equal(t, "from provider", r.Text())

	r = RawResponse{Value: "raw string"}
	assert.Equal(t, "raw string", r.Text())
}

func TestConfigGetModel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))

	// Missing tiers fall back through standard, then lite.
	cfg = &Config{Models: map[ModelTier]string{TierStandard: "custom-standard"}}
	assert.Equal(t, "custom-standard", cfg.GetModel(TierAdvanced))

	cfg = &Config{Models: map[ModelTier]string{TierLite: "custom-lite"}}
	assert.Equal(t, "custom-lite", cfg.GetModel(TierAdvanced))

	cfg = &Config{}
	assert.Empty(t, cfg.GetModel(TierAdvanced))
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "no fence",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"a\": 1}\n```\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "plain text untouched",
			input:    "not json at all",
			expected: "not json at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
