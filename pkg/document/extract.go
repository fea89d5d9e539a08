package document

import (
	"bytes"
	"errors"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Kind is a supported upload content family.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindText
)

// DetectKind decides the content family from the declared MIME type and the
// filename extension. Either signal is sufficient, so a mismatch between
// the two still passes as long as one of them names a supported type.
func DetectKind(contentType, filename string) Kind {
	ct := contentType
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.ToLower(strings.TrimSpace(ct))
	ext := strings.ToLower(path.Ext(filename))

	switch {
	case ct == "application/pdf" || ext == ".pdf":
		return KindPDF
	case ct == "text/plain" || ext == ".txt":
		return KindText
	}
	return KindUnsupported
}

// ExtractText pulls plain text out of the raw upload according to kind.
func ExtractText(kind Kind, data []byte) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindText:
		if !utf8.Valid(data) {
			return "", &Error{Reason: ReasonBadEncoding}
		}
		return string(data), nil
	}
	return "", &Error{Reason: ReasonUnsupportedType}
}

// extractPDF decodes every page in order, concatenated with newlines.
// An encrypted document is attempted with an empty password only.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &Error{Reason: ReasonInvalidFormat}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", &Error{Reason: ReasonEncrypted, Err: err}
		}
		return "", &Error{Reason: ReasonInvalidFormat, Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not invalidate the document.
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Normalize splits extracted text into the ordered chunk lines: one
// chunk per non-empty line after trimming surrounding whitespace.
func Normalize(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
