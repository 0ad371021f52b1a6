package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, BackendGollm, cfg.Backend)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"STORYSHAPE_PROVIDER":        "anthropic",
		"STORYSHAPE_MODEL":           "claude-3-5-haiku-latest",
		"STORYSHAPE_REVIEW_BACKEND":  "openai",
		"STORYSHAPE_MAX_TOKENS":      "512",
		"STORYSHAPE_OPENAI_BASE_URL": "http://localhost:4000",
	})
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Model)
	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, "http://localhost:4000", cfg.OpenAIBaseURL)
}

func TestParseRejectsUnknownBackend(t *testing.T) {
	_, err := Parse(map[string]string{"STORYSHAPE_REVIEW_BACKEND": "carrier-pigeon"})
	assert.Error(t, err)
}

func TestParseRejectsBadNumber(t *testing.T) {
	_, err := Parse(map[string]string{"STORYSHAPE_MAX_TOKENS": "lots"})
	assert.Error(t, err)
}
