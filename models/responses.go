package models

import "time"

// TokenResponse is the JSON body returned by the login and register
// endpoints on success.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Entity is a (text, label) pair extracted from document content by the
// metadata heuristics, e.g. ("Acme Corp", "ORG").
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// DocumentPreview is the response shape of the single-document endpoint:
// the metadata row plus the decrypted content truncated to 500 characters
// and entities re-extracted from the decrypted text.
type DocumentPreview struct {
	Document

	// ContentPreview is the first 500 characters of the decrypted content,
	// suffixed with "..." when the content is longer.
	ContentPreview string `json:"content_preview"`

	// Entities are extracted from the decrypted content at preview time.
	Entities []Entity `json:"entities,omitempty"`
}

// SearchResult is a document hit returned by semantic search, carrying a
// presentation-only relevance score. The score is never stored.
type SearchResult struct {
	Document

	// RelevanceScore is 1/(1+distance) for the matched index entry;
	// monotonically decreasing in the raw L2 distance.
	RelevanceScore float64 `json:"relevance_score"`
}

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	IndexedDocuments int       `json:"indexed_documents"`
	TotalMappings    int       `json:"total_mappings"`
}
