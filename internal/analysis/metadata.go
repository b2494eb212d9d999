package analysis

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Metadata is the structured result of the heuristic document inspection.
type Metadata struct {
	// Title is the first sentence of the document, or "Untitled Document".
	Title string

	// Author is the name following an "Author:" or "By:" marker, if any.
	Author string

	// Date is the first month-name date found in the text, if any.
	Date string

	// Entities are (text, label) pairs detected by the heuristics below.
	Entities []models.Entity
}

var (
	authorRe = regexp.MustCompile(`(?i)(?:author:|by:)\s*([a-zA-Z][a-zA-Z .'-]*)`)
	dateRe   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b`)
	moneyRe  = regexp.MustCompile(`\$\d[\d,]*(?:\.\d+)?`)
	// two or more consecutive capitalized words, e.g. "Acme Holdings" or
	// "Jane Smith"
	properRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
)

var orgSuffixes = []string{"Inc", "Corp", "Ltd", "Llc", "Company", "Holdings", "Group", "Department"}

// ExtractMetadata derives title, author, date, and entities from plain
// text. All fields are best-effort heuristics; absent signals leave their
// fields empty (except Title, which falls back to a placeholder).
func ExtractMetadata(text string) Metadata {
	meta := Metadata{Title: "Untitled Document"}

	if sentences := SplitSentences(text); len(sentences) > 0 {
		meta.Title = strings.TrimSpace(sentences[0])
	}

	if m := authorRe.FindStringSubmatch(text); m != nil {
		meta.Author = strings.TrimSpace(m[1])
	}

	if m := dateRe.FindString(text); m != "" {
		meta.Date = strings.TrimSpace(m)
	}

	meta.Entities = extractEntities(text)
	return meta
}

// extractEntities finds money amounts and capitalized multi-word spans.
// Spans ending in a known organizational suffix are labeled ORG, the rest
// PERSON — a rough stand-in for a real NER model, sufficient for the
// presentation-only entities list.
func extractEntities(text string) []models.Entity {
	var entities []models.Entity
	seen := make(map[string]bool)

	for _, span := range properRe.FindAllString(text, -1) {
		if seen[span] {
			continue
		}
		seen[span] = true

		label := "PERSON"
		for _, suffix := range orgSuffixes {
			if strings.HasSuffix(span, suffix) {
				label = "ORG"
				break
			}
		}
		entities = append(entities, models.Entity{Text: span, Label: label})
	}

	for _, amount := range moneyRe.FindAllString(text, -1) {
		if seen[amount] {
			continue
		}
		seen[amount] = true
		entities = append(entities, models.Entity{Text: amount, Label: "MONEY"})
	}

	return entities
}

// SplitSentences splits text into sentences at ".", "!", or "?" followed by
// whitespace. Single-letter abbreviations ("J. Smith") do not end a
// sentence.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '.' && ch != '!' && ch != '?' {
			continue
		}
		if i+1 >= len(runes) || !isSpace(runes[i+1]) {
			continue
		}
		// "J. Smith" — a lone capital letter before the period is an
		// initial, not a sentence end
		if ch == '.' && i >= 2 && isUpper(runes[i-1]) && isSpace(runes[i-2]) {
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
