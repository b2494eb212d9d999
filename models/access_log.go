package models

import "time"

// Audit actions recorded on every gated document operation.
const (
	ActionUpload   = "upload"
	ActionView     = "view"
	ActionDownload = "download"
	ActionSearch   = "search"
)

// AccessLog is a single append-only audit trail entry. Entries are created
// on every gated operation and never mutated or deleted; they are read back
// only through the audit listing endpoint.
type AccessLog struct {
	// LogID is the autoincrement primary key.
	LogID int64 `json:"log_id"`

	// UserUUID is the acting user's derived UUID.
	UserUUID string `json:"user_uuid"`

	// DocUUID identifies the accessed document (its docid as a string).
	// Empty for actions not tied to a single document, e.g. search.
	DocUUID string `json:"doc_uuid,omitempty"`

	// Action is one of upload, view, download, search.
	Action string `json:"action"`

	// Timestamp is when the action occurred.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the AccessLog model.
func (a AccessLog) TableName() string {
	return "access_logs"
}
