package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaClient generates completions with a local Ollama server.
type OllamaClient struct {
	client *api.Client
	model  string
	config ModelConfig
}

// NewOllamaClient creates a completion client for the given model.
// An empty URL falls back to the standard local server, an empty model
// to llama3.
func NewOllamaClient(rawURL, model string, config ModelConfig) (*OllamaClient, error) {
	if rawURL == "" {
		rawURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama URL %q: %w", rawURL, err)
	}

	// Generations can run long on CPU-only hosts.
	httpClient := &http.Client{Timeout: 5 * time.Minute}
	return &OllamaClient{
		client: api.NewClient(base, httpClient),
		model:  model,
		config: config,
	}, nil
}

// Complete runs a single non-streaming generation and returns the
// model's text.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": c.config.Temperature,
			"top_p":       c.config.TopP,
			"num_predict": c.config.MaxTokens,
		},
	}

	var sb strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return sb.String(), nil
}
