// Package retrieval ranks corpus chunks against a query and composes
// grounded answers from the best matches.
//
// Similarity is the dot product of unit-normalized embeddings, i.e.
// cosine similarity; see the embed package for the normalization
// contract. Thresholds are inclusive and live in [-1, 1].
package retrieval

import (
	"context"
	"errors"
	"sort"

	"github.com/andrew/ragserve/pkg/document"
	"github.com/andrew/ragserve/pkg/embed"
	"github.com/andrew/ragserve/pkg/models"
)

// Service retrieves the most relevant chunks for a query. It never
// mutates the corpus.
type Service struct {
	embedder embed.Embedder
	store    *document.Store
}

// NewService creates a retriever over the given store.
func NewService(embedder embed.Embedder, store *document.Store) *Service {
	return &Service{embedder: embedder, store: store}
}

// Retrieve embeds the query once, scores it against every stored
// chunk, filters by the query's similarity threshold, and returns the
// top-k matches ordered by score descending. Equal scores keep their
// corpus order, so the output is deterministic for a fixed corpus.
func (s *Service) Retrieve(ctx context.Context, query models.Query) ([]models.RetrievalResult, error) {
	corpus := s.store.Snapshot()
	if corpus.Len() == 0 {
		return nil, ErrNoDocuments
	}

	queryVec, err := s.embedder.Embed(ctx, query.Text)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Op: "query embedding", Err: err}
		}
		return nil, err
	}

	threshold := query.EffectiveThreshold()
	results := make([]models.RetrievalResult, 0, corpus.Len())
	for i, vec := range corpus.Embeddings {
		score := embed.Dot(queryVec, vec)
		if score >= threshold {
			results = append(results, models.RetrievalResult{
				Document:   corpus.Chunks[i].Text,
				Similarity: score,
				Index:      corpus.Chunks[i].Index,
			})
		}
	}

	// Stable keeps ascending corpus order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if k := query.EffectiveTopK(); len(results) > k {
		results = results[:k]
	}
	return results, nil
}
