package analysis

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Supported upload media types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTXT  = "text/plain"
)

// MimeForFilename maps a filename extension to one of the supported media
// types. Returns "" for unknown extensions; callers fall back to the media
// type declared by the client.
func MimeForFilename(name string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".pdf"):
		return MimePDF
	case strings.HasSuffix(strings.ToLower(name), ".docx"):
		return MimeDOCX
	case strings.HasSuffix(strings.ToLower(name), ".txt"):
		return MimeTXT
	default:
		return ""
	}
}

// IsSupportedMime reports whether mimeType is one of the accepted upload
// formats.
func IsSupportedMime(mimeType string) bool {
	switch mimeType {
	case MimePDF, MimeDOCX, MimeTXT:
		return true
	default:
		return false
	}
}

// ExtractText reads the file at path and returns its plain-text content.
// The format is selected by mimeType, which the transport layer has already
// validated against the allow-list; an unknown type still fails defensively
// with [ErrUnsupportedFormat].
func ExtractText(path, mimeType string) (string, error) {
	switch mimeType {
	case MimeTXT:
		return extractTXT(path)
	case MimePDF:
		return extractPDF(path)
	case MimeDOCX:
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
}

func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func extractPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// extractDOCX pulls the text runs out of word/document.xml. A DOCX file is
// a zip archive; paragraphs become newlines, text runs are concatenated.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	defer archive.Close()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("%w: no document body in archive", ErrExtraction)
	}

	body, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	defer body.Close()

	text, err := docxText(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	return strings.TrimSpace(text), nil
}

func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var builder strings.Builder
	var inTextRun bool

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				builder.Write(t)
			}
		}
	}

	return builder.String(), nil
}
