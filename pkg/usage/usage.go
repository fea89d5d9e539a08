// Package usage keeps in-memory per-user token accounting.
package usage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one accounted model invocation.
type Record struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Feature      string    `json:"feature"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	TotalTokens  int       `json:"total_tokens"`
	Timestamp    time.Time `json:"timestamp"`
}

// Recorder accumulates usage records for the lifetime of the process.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a usage entry and returns it.
func (r *Recorder) Record(username, feature string, inputTokens, outputTokens int) Record {
	rec := Record{
		ID:           uuid.NewString(),
		Username:     username,
		Feature:      feature,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		Timestamp:    time.Now().UTC(),
	}
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return rec
}

// ForUser returns the records belonging to one user, oldest first.
func (r *Recorder) ForUser(username string) []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Record
	for _, rec := range r.records {
		if rec.Username == username {
			out = append(out, rec)
		}
	}
	return out
}

// All returns every record, oldest first.
func (r *Recorder) All() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// CountTokens approximates the token count of a text as one token per
// four characters, the usual rule of thumb for English BPE
// vocabularies. Exact tokenizer parity is not needed for accounting.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}
	n := (len(text) + 3) / 4
	if n == 0 {
		n = 1
	}
	return n
}
