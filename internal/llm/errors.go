package llm

import "errors"

var (
	// ErrDisabled is returned by clients when LLM support is switched off.
	ErrDisabled = errors.New("llm disabled")

	ErrOllamaUnavailable = errors.New("ollama server unavailable")
	ErrTimeout           = errors.New("llm request timed out")

	// ErrInvalidOutput means the response could not be parsed into the
	// expected structure.
	ErrInvalidOutput = errors.New("invalid llm output format")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
