package embed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaEmbedder computes embeddings with a local Ollama server.
type OllamaEmbedder struct {
	client *api.Client
	model  string
}

// NewOllama creates an embedder against the given Ollama base URL.
// An empty URL falls back to the standard local server, an empty model
// to nomic-embed-text.
func NewOllama(rawURL, model string) (*OllamaEmbedder, error) {
	if rawURL == "" {
		rawURL = "http://localhost:11434"
	}
	if model == "" {
		model = "nomic-embed-text"
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama URL %q: %w", rawURL, err)
	}

	httpClient := &http.Client{Timeout: 2 * time.Minute}
	return &OllamaEmbedder{
		client: api.NewClient(base, httpClient),
		model:  model,
	}, nil
}

// Embed returns the unit-normalized embedding of a single text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch embeds all texts in one API call and normalizes the
// resulting vectors.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("ollama embed: got %d vectors for %d texts", len(resp.Embeddings), len(texts))
	}

	for i := range resp.Embeddings {
		Normalize(resp.Embeddings[i])
	}
	return resp.Embeddings, nil
}
