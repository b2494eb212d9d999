package store

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// UserRepository persists and resolves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByUUID(ctx context.Context, uuid string) (models.User, error)
}

// DocumentFilter narrows a document listing. The zero value matches nothing;
// set All for an unrestricted listing, or OwnerUUID / Categories for an
// ownership-or-category match.
type DocumentFilter struct {
	// All disables row filtering entirely (administrator listings).
	All bool

	// OwnerUUID, when non-empty, matches documents owned by that user.
	OwnerUUID string

	// Categories, when non-empty, additionally matches documents whose
	// category is in the set, regardless of owner.
	Categories []string

	// Skip and Limit page through the result set. Limit == 0 means no limit.
	Skip  uint64
	Limit uint64
}

// DocumentRepository persists document metadata rows. Rows are append-only:
// re-uploading a file creates a new row with a new docid.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	GetDocumentByID(ctx context.Context, docID int64) (models.Document, error)
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]models.Document, error)
}

// AccessLogRepository appends and lists audit trail entries. Entries are
// never mutated or deleted.
type AccessLogRepository interface {
	Append(ctx context.Context, entry models.AccessLog) error
	List(ctx context.Context, skip, limit uint64) ([]models.AccessLog, error)
}

// BlobStorage persists sealed (encrypted) document content outside the
// relational database. Save returns the locator that LoadBlob accepts back.
type BlobStorage interface {
	SaveBlob(ctx context.Context, name string, sealed []byte) (string, error)
	LoadBlob(ctx context.Context, locator string) ([]byte, error)
	RemoveBlob(ctx context.Context, locator string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
