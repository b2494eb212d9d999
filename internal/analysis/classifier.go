package analysis

import (
	"strings"

	"github.com/MKhiriev/go-doc-vault/models"
)

// categoryKeywords holds the keyword set for each category. Order matters:
// the first category with any keyword present in the text wins, so a text
// mentioning both "contract" and "legal" is classified Legal, not Contracts.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{models.CategoryFinance, []string{"invoice", "financial", "report", "budget", "quarterly", "revenue", "expense", "profit"}},
	{models.CategoryHR, []string{"employee", "handbook", "policy", "onboarding", "leave", "benefits", "hr department"}},
	{models.CategoryLegal, []string{"legal", "agreement", "contract", "terms", "conditions", "lawsuit", "compliance"}},
	{models.CategoryContracts, []string{"contract", "agreement", "clause", "signing", "party", "effective date"}},
	{models.CategoryTechnical, []string{"api", "documentation", "technical", "code", "server", "database", "engineering"}},
}

// Classify assigns a document category by keyword matching against the
// lower-cased text. Returns [models.CategoryGeneral] when no keyword set
// matches.
func Classify(text string) string {
	lower := strings.ToLower(text)

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}

	return models.CategoryGeneral
}
