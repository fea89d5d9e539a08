// Package llm wraps the external text generation capability.
package llm

import "context"

// Completer is the interface for prompt-to-text generation. The
// underlying model call may fail transiently; no retries happen here.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelConfig holds sampling parameters for generation.
type ModelConfig struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// DefaultModelConfig returns conservative defaults for grounded
// question answering.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Temperature: 0.2,
		TopP:        0.9,
		MaxTokens:   2048,
	}
}
