package document

import (
	"context"
	"sync"

	"github.com/andrew/ragserve/pkg/embed"
	"github.com/andrew/ragserve/pkg/models"
)

// Corpus is an immutable snapshot of the ingested chunks and their
// embeddings. Chunks[i] pairs with Embeddings[i]; the two slices are
// always replaced together, never patched in place.
type Corpus struct {
	Chunks     []models.Chunk
	Embeddings [][]float32
}

// Len returns the number of chunks in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Chunks)
}

// Store owns the current corpus. Ingest is the only writer; readers
// take a snapshot and never observe a partially replaced corpus.
type Store struct {
	mu       sync.RWMutex
	corpus   *Corpus
	embedder embed.Embedder
}

// NewStore creates an empty store backed by the given embedder.
func NewStore(embedder embed.Embedder) *Store {
	return &Store{embedder: embedder}
}

// Snapshot returns the current corpus, or nil before the first
// successful upload. The returned value is never mutated afterwards.
func (s *Store) Snapshot() *Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus
}

// Ingest extracts text from an uploaded file, normalizes it into
// chunks, embeds every chunk, and swaps in the new corpus as a single
// unit. On any error the previous corpus is retained. Returns the
// number of stored chunks.
func (s *Store) Ingest(ctx context.Context, data []byte, contentType, filename string) (int, error) {
	kind := DetectKind(contentType, filename)
	if kind == KindUnsupported {
		return 0, &Error{Reason: ReasonUnsupportedType}
	}

	text, err := ExtractText(kind, data)
	if err != nil {
		return 0, err
	}

	lines := Normalize(text)
	if len(lines) == 0 {
		return 0, &Error{Reason: ReasonEmptyContent}
	}

	vectors, err := s.embedder.EmbedBatch(ctx, lines)
	if err != nil {
		return 0, err
	}

	chunks := make([]models.Chunk, len(lines))
	for i, line := range lines {
		chunks[i] = models.Chunk{Index: i, Text: line}
	}

	next := &Corpus{Chunks: chunks, Embeddings: vectors}
	s.mu.Lock()
	s.corpus = next
	s.mu.Unlock()

	return len(chunks), nil
}
