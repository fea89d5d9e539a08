package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andrew/ragserve/pkg/llm"
	"github.com/andrew/ragserve/pkg/models"
)

// DefaultPromptTemplate grounds the model in the retrieved context,
// asks for a concise answer, and tells it to admit uncertainty.
const DefaultPromptTemplate = `Context information:
%s

Question: %s
Answer clearly and concisely using the provided context. If unsure, state that you don't know.`

// AnswerService composes retrieved chunks into a prompt and delegates
// generation to a Completer.
type AnswerService struct {
	retriever *Service
	completer llm.Completer
	template  string
}

// NewAnswerService creates an answer composer. An empty template falls
// back to DefaultPromptTemplate; a custom one must keep the two %s
// verbs for context and question.
func NewAnswerService(retriever *Service, completer llm.Completer, template string) *AnswerService {
	if template == "" {
		template = DefaultPromptTemplate
	}
	return &AnswerService{retriever: retriever, completer: completer, template: template}
}

// Answer retrieves context for the query, builds the grounding prompt,
// and returns the model's trimmed response. An empty model response is
// passed through as-is.
func (a *AnswerService) Answer(ctx context.Context, query models.Query) (string, error) {
	results, err := a.retriever.Retrieve(ctx, query)
	if err != nil {
		return "", err
	}

	docs := make([]string, len(results))
	for i, r := range results {
		docs[i] = r.Document
	}
	prompt := fmt.Sprintf(a.template, strings.Join(docs, "\n"), query.Text)

	answer, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Op: "answer generation", Err: err}
		}
		return "", &GenerationError{Err: err}
	}
	return strings.TrimSpace(answer), nil
}
