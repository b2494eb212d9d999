package analysis

import "errors"

// Sentinel errors returned by text extraction. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedFormat is returned when the file's media type is not
	// one of the supported document formats (PDF, DOCX, TXT).
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtraction is returned when a supported file cannot be parsed,
	// e.g. a corrupted PDF or a DOCX archive without a document body.
	ErrExtraction = errors.New("document text extraction failed")
)
