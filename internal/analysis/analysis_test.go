package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/models"
)

func TestClassify_KeywordCategories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"finance keywords", "The quarterly revenue report shows strong growth.", models.CategoryFinance},
		{"hr keywords", "Please read the employee handbook before onboarding.", models.CategoryHR},
		{"legal wins over contracts", "This contract is a binding agreement under applicable law.", models.CategoryLegal},
		{"technical keywords", "The api documentation covers the server endpoints.", models.CategoryTechnical},
		{"no keywords", "A short note about nothing in particular.", models.CategoryGeneral},
		{"case insensitive", "QUARTERLY REVENUE numbers attached.", models.CategoryFinance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestExtractText_TXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello world\n"), 0o600))

	text, err := ExtractText(path, MimeTXT)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtractText_UnsupportedMime(t *testing.T) {
	_, err := ExtractText("whatever.bin", "application/octet-stream")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "absent.txt"), MimeTXT)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestIsSupportedMime(t *testing.T) {
	assert.True(t, IsSupportedMime(MimePDF))
	assert.True(t, IsSupportedMime(MimeDOCX))
	assert.True(t, IsSupportedMime(MimeTXT))
	assert.False(t, IsSupportedMime("image/png"))
	assert.False(t, IsSupportedMime(""))
}

func TestMimeForFilename(t *testing.T) {
	assert.Equal(t, MimePDF, MimeForFilename("Q3 Report.PDF"))
	assert.Equal(t, MimeDOCX, MimeForFilename("contract.docx"))
	assert.Equal(t, MimeTXT, MimeForFilename("notes.txt"))
	assert.Equal(t, "", MimeForFilename("image.png"))
	assert.Equal(t, "", MimeForFilename("no-extension"))
}

func TestExtractMetadata_Fields(t *testing.T) {
	text := "Annual Budget Overview. Prepared with care.\n" +
		"Author: Jane Smith\n" +
		"Published Mar 14, 2025.\n" +
		"Acme Holdings reported $1,200,000 in profit."

	meta := ExtractMetadata(text)

	assert.Equal(t, "Annual Budget Overview.", meta.Title)
	assert.Equal(t, "Jane Smith", meta.Author)
	assert.Equal(t, "Mar 14, 2025", meta.Date)

	labels := make(map[string]string)
	for _, e := range meta.Entities {
		labels[e.Text] = e.Label
	}
	assert.Equal(t, "ORG", labels["Acme Holdings"])
	assert.Equal(t, "PERSON", labels["Jane Smith"])
	assert.Equal(t, "MONEY", labels["$1,200,000"])
}

func TestExtractMetadata_Defaults(t *testing.T) {
	meta := ExtractMetadata("no markers here whatsoever")
	assert.Equal(t, "no markers here whatsoever", meta.Title)
	assert.Empty(t, meta.Author)
	assert.Empty(t, meta.Date)
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence. Second one? Third! By J. Smith we stay whole.")
	require.Len(t, sentences, 4)
	assert.Equal(t, "First sentence.", sentences[0])
	assert.Equal(t, "Second one?", sentences[1])
	assert.Equal(t, "Third!", sentences[2])
	assert.Equal(t, "By J. Smith we stay whole.", sentences[3])

	assert.Nil(t, SplitSentences("   "))
}

func TestSummarize_ShortTextReturnedWhole(t *testing.T) {
	text := "One sentence. Two sentences."
	assert.Equal(t, "One sentence. Two sentences.", Summarize(text, 3))
}

func TestSummarize_PicksTopicalSentencesInOrder(t *testing.T) {
	text := "The budget revenue forecast is strong. Cats sleep all day. " +
		"Revenue grew beyond the budget forecast. Dogs bark at night. " +
		"The forecast revises budget revenue upward."

	summary := Summarize(text, 3)

	// lead sentence is always the closest to itself
	assert.True(t, strings.HasPrefix(summary, "The budget revenue forecast is strong."))
	assert.Contains(t, summary, "Revenue grew beyond the budget forecast.")
	assert.NotContains(t, summary, "Cats sleep all day.")

	// selection is re-sorted into document order
	first := strings.Index(summary, "The budget revenue forecast is strong.")
	second := strings.Index(summary, "Revenue grew beyond the budget forecast.")
	assert.Less(t, first, second)
}
