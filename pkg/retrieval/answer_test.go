package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew/ragserve/pkg/document"
	"github.com/andrew/ragserve/pkg/models"
)

type stubCompleter struct {
	answer string
	err    error
	prompt string
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.answer, s.err
}

func TestAnswerPromptComposition(t *testing.T) {
	svc, _ := newFixture(t)
	completer := &stubCompleter{answer: "  The sky is blue.  "}
	answerer := NewAnswerService(svc, completer, "")

	answer, err := answerer.Answer(context.Background(), models.Query{
		Text:                "nature",
		TopK:                3,
		SimilarityThreshold: threshold(0),
	})
	require.NoError(t, err)
	require.Equal(t, "The sky is blue.", answer)

	// Retrieved chunks joined by single newlines, in ranked order,
	// followed by the literal question.
	require.Contains(t, completer.prompt, "The sky is blue.\nGrass is green.\nWater is wet.")
	require.Contains(t, completer.prompt, "Question: nature")
	require.Contains(t, completer.prompt, "using the provided context")
	require.Contains(t, completer.prompt, "state that you don't know")
}

func TestAnswerNoDocuments(t *testing.T) {
	embedder := &mapEmbedder{vectors: map[string][]float32{"q": {1}}}
	svc := NewService(embedder, document.NewStore(embedder))
	answerer := NewAnswerService(svc, &stubCompleter{}, "")

	_, err := answerer.Answer(context.Background(), models.Query{Text: "q"})
	require.ErrorIs(t, err, ErrNoDocuments)
}

func TestAnswerGenerationError(t *testing.T) {
	svc, _ := newFixture(t)
	upstream := fmt.Errorf("model unavailable")
	answerer := NewAnswerService(svc, &stubCompleter{err: upstream}, "")

	_, err := answerer.Answer(context.Background(), models.Query{
		Text:                "sky color",
		SimilarityThreshold: threshold(0),
	})
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	require.ErrorIs(t, err, upstream)
}

func TestAnswerTimeout(t *testing.T) {
	svc, _ := newFixture(t)
	wrapped := fmt.Errorf("generate: %w", context.DeadlineExceeded)
	answerer := NewAnswerService(svc, &stubCompleter{err: wrapped}, "")

	_, err := answerer.Answer(context.Background(), models.Query{
		Text:                "sky color",
		SimilarityThreshold: threshold(0),
	})
	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)

	var genErr *GenerationError
	require.False(t, errors.As(err, &genErr), "timeouts must stay distinct from generation failures")
}

func TestAnswerEmptyResponsePassthrough(t *testing.T) {
	svc, _ := newFixture(t)
	answerer := NewAnswerService(svc, &stubCompleter{answer: "   "}, "")

	answer, err := answerer.Answer(context.Background(), models.Query{
		Text:                "sky color",
		SimilarityThreshold: threshold(0),
	})
	require.NoError(t, err)
	require.Equal(t, "", answer, "no synthetic fallback text")
}

func TestAnswerCustomTemplate(t *testing.T) {
	svc, _ := newFixture(t)
	completer := &stubCompleter{answer: "ok"}
	answerer := NewAnswerService(svc, completer, "CTX[%s] Q[%s]")

	_, err := answerer.Answer(context.Background(), models.Query{
		Text:                "sky color",
		TopK:                1,
		SimilarityThreshold: threshold(0),
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(completer.prompt, "CTX[The sky is blue.]"))
	require.Contains(t, completer.prompt, "Q[sky color]")
}
