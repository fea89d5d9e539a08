package document

import "fmt"

// Reason classifies why an upload was rejected.
type Reason string

const (
	ReasonUnsupportedType Reason = "unsupported_type"
	ReasonInvalidFormat   Reason = "invalid_format"
	ReasonEncrypted       Reason = "encrypted"
	ReasonBadEncoding     Reason = "bad_encoding"
	ReasonEmptyContent    Reason = "empty_content"
)

// Error is a caller-input problem found during ingestion. The previous
// corpus is always left untouched when one is returned.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("document %s", e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns a caller-facing description of the rejection.
func (e *Error) Message() string {
	switch e.Reason {
	case ReasonUnsupportedType:
		return "Unsupported file type. Only PDF and TXT are allowed."
	case ReasonInvalidFormat:
		return "Invalid PDF file"
	case ReasonEncrypted:
		return "Encrypted PDF cannot be processed"
	case ReasonBadEncoding:
		return "File is not a valid UTF-8 text file."
	case ReasonEmptyContent:
		return "No readable content found"
	}
	return string(e.Reason)
}
