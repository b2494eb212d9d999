package service

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// AuthService owns the account lifecycle: registration, credential
// verification, and JWT issuance/validation.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password, role string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UploadRequest describes a file received by the transport layer. TempPath
// points at the transient plaintext copy in the upload directory; the
// document service removes it on every exit path.
type UploadRequest struct {
	Filename string
	MimeType string
	TempPath string
}

// DownloadResult carries the decrypted document content back to the
// transport layer.
type DownloadResult struct {
	Filename string
	Content  []byte
}

// DocumentService orchestrates the document lifecycle: encrypted upload,
// visibility-scoped listing, gated preview/download, and semantic search.
type DocumentService interface {
	Upload(ctx context.Context, actor models.User, upload UploadRequest) (models.Document, error)
	ListVisible(ctx context.Context, actor models.User, skip, limit uint64) ([]models.Document, error)
	Preview(ctx context.Context, actor models.User, docID int64) (models.DocumentPreview, error)
	Download(ctx context.Context, actor models.User, docID int64) (DownloadResult, error)
	Search(ctx context.Context, actor models.User, query string, limit int) ([]models.SearchResult, error)
	AccessLogs(ctx context.Context, actor models.User, skip, limit uint64) ([]models.AccessLog, error)
	Health(ctx context.Context) models.HealthResponse
}

// CryptoPool runs CPU-bound crypto jobs off the request-dispatch path.
// Implemented by [workers.Pool].
type CryptoPool interface {
	Do(ctx context.Context, fn func()) error
}
