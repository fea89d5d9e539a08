package retrieval

import (
	"errors"
	"fmt"
)

// ErrNoDocuments is returned when retrieval or generation is attempted
// before any document has been uploaded.
var ErrNoDocuments = errors.New("no documents uploaded yet")

// GenerationError wraps a failure of the text generation backend. It
// is never retried here; the caller may retry the whole request.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return fmt.Sprintf("generation failed: %v", e.Err) }
func (e *GenerationError) Unwrap() error { return e.Err }

// TimeoutError marks an embedding or generation call that exceeded the
// caller's deadline, so clients can tell "try again" from "fix your
// input".
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("%s timed out: %v", e.Op, e.Err) }
func (e *TimeoutError) Unwrap() error { return e.Err }
