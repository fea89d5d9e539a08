package models

// Defaults applied when a query omits the optional tuning fields.
const (
	DefaultTopK                = 3
	DefaultSimilarityThreshold = 0.3
)

// Query is a retrieval or generation request against the current corpus.
type Query struct {
	Text string `json:"query" binding:"required"`

	// TopK caps the number of returned passages; zero means DefaultTopK.
	TopK int `json:"top_k"`

	// SimilarityThreshold is the minimum cosine similarity for a passage
	// to be considered relevant. A nil pointer means
	// DefaultSimilarityThreshold; an explicit 0 disables filtering.
	SimilarityThreshold *float32 `json:"similarity_threshold"`
}

// EffectiveTopK returns the top-k limit with the default applied.
func (q Query) EffectiveTopK() int {
	if q.TopK <= 0 {
		return DefaultTopK
	}
	return q.TopK
}

// EffectiveThreshold returns the similarity threshold with the default applied.
func (q Query) EffectiveThreshold() float32 {
	if q.SimilarityThreshold == nil {
		return DefaultSimilarityThreshold
	}
	return *q.SimilarityThreshold
}

// RetrievalResult is one passage that matched a query.
type RetrievalResult struct {
	Document   string  `json:"document"`
	Similarity float32 `json:"similarity"`
	Index      int     `json:"index"`
}

// AnswerResponse carries a generated answer back to the caller.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// UploadResponse reports how many chunks an ingestion produced.
type UploadResponse struct {
	Message    string `json:"message"`
	ChunkCount int    `json:"chunk_count"`
}
