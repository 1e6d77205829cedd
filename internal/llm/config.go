package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAnalyzeIdea    TaskType = "analyze_idea"
	TaskQuoteNarrative TaskType = "quote_narrative"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int  // overrides global if > 0
	JSONMode    bool // ask the server to constrain output to JSON
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled        bool
	LogCalls       bool
	Endpoint       string
	Model          string
	TimeoutMs      int
	MaxRetries     int
	RetryBackoffMs int
	// MinConfidence is the lowest analyzer confidence accepted before the
	// heuristic reading is preferred.
	MinConfidence float64
	Tasks         map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with LLM disabled.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:        false,
		LogCalls:       false,
		Endpoint:       "http://localhost:11434",
		Model:          "llama3.2",
		TimeoutMs:      15000,
		MaxRetries:     1,
		RetryBackoffMs: 250,
		MinConfidence:  0.4,
		Tasks: map[TaskType]TaskConfig{
			TaskAnalyzeIdea:    {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 20000, JSONMode: true},
			TaskQuoteNarrative: {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 15000},
		},
	}
}

const envPrefix = "QUOTEFORGE_LLM_"

// LoadConfig reads LLM configuration from QUOTEFORGE_LLM_* environment
// variables, falling back to defaults for unset or malformed values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v, ok := env("ENABLED"); ok {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v, ok := env("LOG_CALLS"); ok {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v, ok := env("ENDPOINT"); ok {
		cfg.Endpoint = v
	}
	if v, ok := env("MODEL"); ok {
		cfg.Model = v
	}
	if n, ok := envInt("TIMEOUT_MS"); ok && n > 0 {
		cfg.TimeoutMs = n
	}
	if n, ok := envInt("MAX_RETRIES"); ok && n >= 0 {
		cfg.MaxRetries = n
	}
	if n, ok := envInt("RETRY_BACKOFF_MS"); ok && n >= 0 {
		cfg.RetryBackoffMs = n
	}
	if v, ok := env("MIN_CONFIDENCE"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.MinConfidence = f
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAnalyzeIdea, "ANALYZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQuoteNarrative, "NARRATIVE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the task-specific timeout if set, otherwise the global one.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func env(name string) (string, bool) {
	v := os.Getenv(envPrefix + name)
	return v, v != ""
}

func envInt(name string) (int, bool) {
	v, ok := env(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, name string) {
	n, ok := envInt(name)
	if !ok || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
