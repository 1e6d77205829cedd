package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.True(t, cfg.Tasks[TaskAnalyzeIdea].JSONMode)
	assert.False(t, cfg.Tasks[TaskQuoteNarrative].JSONMode)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUOTEFORGE_LLM_ENABLED", "true")
	t.Setenv("QUOTEFORGE_LLM_MODEL", "qwen2.5")
	t.Setenv("QUOTEFORGE_LLM_TIMEOUT_MS", "9000")
	t.Setenv("QUOTEFORGE_LLM_ANALYZE_TIMEOUT_MS", "30000")
	t.Setenv("QUOTEFORGE_LLM_MIN_CONFIDENCE", "0.6")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskAnalyzeIdea))
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskQuoteNarrative))
	assert.Equal(t, 0.6, cfg.MinConfidence)
}

func TestLoadConfig_MalformedValuesIgnored(t *testing.T) {
	t.Setenv("QUOTEFORGE_LLM_ANALYZE_TIMEOUT_MS", "soon")
	t.Setenv("QUOTEFORGE_LLM_MAX_RETRIES", "-2")
	t.Setenv("QUOTEFORGE_LLM_MIN_CONFIDENCE", "7")

	cfg := LoadConfig()

	assert.Equal(t, 20000, cfg.TaskTimeout(TaskAnalyzeIdea))
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 0.4, cfg.MinConfidence)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = map[TaskType]TaskConfig{}
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskAnalyzeIdea))
}
