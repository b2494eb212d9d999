package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/analysis"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/embedding"
	"github.com/MKhiriev/go-doc-vault/internal/index"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// previewLength is the number of characters of decrypted content exposed by
// the preview endpoint.
const previewLength = 500

// summarySentences is the extractive summary size recorded at upload time.
const summarySentences = 3

// defaultSearchLimit applies when the caller requests no explicit limit.
const defaultSearchLimit = 10

// documentService orchestrates the encrypted document lifecycle. Content is
// sealed with the key derived from the acting user's stored credential
// material; decryption on preview and download likewise derives the key from
// the viewer's credentials, so opening a foreign document surfaces
// [crypto.ErrIntegrity] even when the policy allows the view.
type documentService struct {
	documents store.DocumentRepository
	audit     store.AccessLogRepository
	blobs     store.BlobStorage
	keyChain  crypto.KeyChainService
	policy    *AccessPolicy
	embedder  embedding.Embedder
	index     index.VectorIndex
	pool      CryptoPool
	uuids     *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewDocumentService wires the document orchestrator.
func NewDocumentService(
	storages *store.Storages,
	keyChain crypto.KeyChainService,
	policy *AccessPolicy,
	embedder embedding.Embedder,
	vectorIndex index.VectorIndex,
	pool CryptoPool,
	logger *logger.Logger,
) DocumentService {
	return &documentService{
		documents: storages.DocumentRepository,
		audit:     storages.AccessLogRepository,
		blobs:     storages.BlobStorage,
		keyChain:  keyChain,
		policy:    policy,
		embedder:  embedder,
		index:     vectorIndex,
		pool:      pool,
		uuids:     utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Upload ingests an uploaded file: extract its text, classify, summarise,
// then seal the extracted text and store it.
//
// The transient plaintext file at upload.TempPath is removed on every exit
// path. Embedding and index insertion failures never fail the upload; the
// document is durable the moment its row is written, search coverage catches
// up on a later re-upload.
func (s *documentService) Upload(ctx context.Context, actor models.User, upload UploadRequest) (models.Document, error) {
	log := logger.FromContext(ctx)
	defer func() {
		if err := os.Remove(upload.TempPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", upload.TempPath).Msg("failed to remove transient upload file")
		}
	}()

	if upload.Filename == "" || upload.TempPath == "" {
		return models.Document{}, fmt.Errorf("%w: filename is required", ErrValidation)
	}
	if !analysis.IsSupportedMime(upload.MimeType) {
		return models.Document{}, fmt.Errorf("%w: unsupported file type %q", ErrValidation, upload.MimeType)
	}

	text, err := analysis.ExtractText(upload.TempPath, upload.MimeType)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	category := analysis.Classify(text)
	meta := analysis.ExtractMetadata(text)
	summary := analysis.Summarize(text, summarySentences)

	author := meta.Author
	if author == "" {
		author = actor.Username
	}

	// the extracted text is the stored content: preview and download both
	// serve text, never the container bytes
	sealed, err := s.sealForUser(ctx, actor, []byte(text))
	if err != nil {
		return models.Document{}, err
	}

	locator, err := s.blobs.SaveBlob(ctx, s.uuids.Generate()+".enc", sealed)
	if err != nil {
		return models.Document{}, err
	}

	document := models.Document{
		OwnerUUID: actor.UUID,
		Filename:  upload.Filename,
		Filepath:  locator,
		Category:  category,
		Author:    author,
		Summary:   summary,
	}

	created, err := s.documents.CreateDocument(ctx, document)
	if err != nil {
		// undo the blob write so no orphan ciphertext remains
		if removeErr := s.blobs.RemoveBlob(ctx, locator); removeErr != nil {
			log.Warn().Err(removeErr).Str("locator", locator).Msg("failed to remove orphaned blob")
		}
		return models.Document{}, err
	}

	s.appendAudit(ctx, actor, created.DocID, models.ActionUpload)

	// search coverage is best-effort: the document is durable already
	if vector, err := s.embedder.Embed(ctx, text); err != nil {
		log.Warn().Err(err).Int64("docid", created.DocID).Msg("embedding failed, document not indexed")
	} else if err := s.index.Insert(created.DocID, vector); err != nil {
		log.Warn().Err(err).Int64("docid", created.DocID).Msg("index insert failed")
	}

	return created, nil
}

// ListVisible returns the documents the actor's role is allowed to list,
// newest first.
func (s *documentService) ListVisible(ctx context.Context, actor models.User, skip, limit uint64) ([]models.Document, error) {
	return s.documents.ListDocuments(ctx, s.policy.VisibleSet(actor, skip, limit))
}

// Preview returns the document row plus the first 500 characters of content
// decrypted with the viewer's credential-derived key, and entities extracted
// from the decrypted text.
func (s *documentService) Preview(ctx context.Context, actor models.User, docID int64) (models.DocumentPreview, error) {
	document, plaintext, err := s.openForActor(ctx, actor, docID)
	if err != nil {
		return models.DocumentPreview{}, err
	}

	s.appendAudit(ctx, actor, docID, models.ActionView)

	content := strings.ToValidUTF8(string(plaintext), "")
	preview := content
	if len([]rune(preview)) > previewLength {
		preview = string([]rune(preview)[:previewLength]) + "..."
	}

	return models.DocumentPreview{
		Document:       document,
		ContentPreview: preview,
		Entities:       analysis.ExtractMetadata(content).Entities,
	}, nil
}

// Download returns the full decrypted text content for streaming back as an
// attachment.
func (s *documentService) Download(ctx context.Context, actor models.User, docID int64) (DownloadResult, error) {
	document, plaintext, err := s.openForActor(ctx, actor, docID)
	if err != nil {
		return DownloadResult{}, err
	}

	s.appendAudit(ctx, actor, docID, models.ActionDownload)

	return DownloadResult{Filename: document.Filename, Content: plaintext}, nil
}

// Search embeds the query, scans the index, and returns visible documents
// ordered by descending relevance.
//
// The search audit entry is recorded before any results are computed, so the
// trail shows the attempt even when embedding or the index scan fails.
func (s *documentService) Search(ctx context.Context, actor models.User, query string, limit int) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be blank", ErrValidation)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	s.appendAudit(ctx, actor, 0, models.ActionSearch)

	if s.index.Len() == 0 {
		return []models.SearchResult{}, nil
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}

	hits, err := s.index.Search(vector, limit)
	if err != nil {
		return nil, fmt.Errorf("index search failed: %w", err)
	}

	results := make([]models.SearchResult, 0, len(hits))
	for _, hit := range hits {
		document, err := s.documents.GetDocumentByID(ctx, hit.DocID)
		if err != nil {
			// a mapping entry can outlive its row only through manual
			// intervention; skip rather than fail the whole search
			log.Warn().Err(err).Int64("docid", hit.DocID).Msg("indexed document could not be resolved")
			continue
		}
		if !s.policy.CanView(actor, document) {
			continue
		}
		results = append(results, models.SearchResult{
			Document:       document,
			RelevanceScore: index.Similarity(hit.Distance),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results, nil
}

// AccessLogs lists the audit trail, newest first. Restricted to hr and
// admin roles.
func (s *documentService) AccessLogs(ctx context.Context, actor models.User, skip, limit uint64) ([]models.AccessLog, error) {
	if !s.policy.CanReadAuditLog(actor) {
		return nil, ErrAccessDenied
	}
	return s.audit.List(ctx, skip, limit)
}

// Health reports index coverage for the health endpoint. Vector and mapping
// counts are reported independently so drift between the two artifacts is
// visible.
func (s *documentService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:           "healthy",
		Timestamp:        time.Now().UTC(),
		IndexedDocuments: s.index.Len(),
		TotalMappings:    s.index.MappingLen(),
	}
}

// openForActor resolves the document, checks the view gate, and decrypts the
// blob with the actor's credential-derived key.
func (s *documentService) openForActor(ctx context.Context, actor models.User, docID int64) (models.Document, []byte, error) {
	document, err := s.documents.GetDocumentByID(ctx, docID)
	if err != nil {
		return models.Document{}, nil, err
	}

	if !s.policy.CanView(actor, document) {
		return models.Document{}, nil, ErrAccessDenied
	}

	sealed, err := s.blobs.LoadBlob(ctx, document.Filepath)
	if err != nil {
		return models.Document{}, nil, err
	}

	var key []byte
	var plaintext []byte
	var openErr error
	if err := s.pool.Do(ctx, func() {
		key = s.keyChain.DeriveKey(actor.HashedPassword, actor.Salt)
		plaintext, openErr = s.keyChain.Open(key, sealed)
	}); err != nil {
		return models.Document{}, nil, fmt.Errorf("decryption did not complete: %w", err)
	}
	if openErr != nil {
		return models.Document{}, nil, openErr
	}

	return document, plaintext, nil
}

// sealForUser derives the user's key and seals plaintext on the worker pool.
func (s *documentService) sealForUser(ctx context.Context, user models.User, plaintext []byte) ([]byte, error) {
	var sealed []byte
	var sealErr error
	if err := s.pool.Do(ctx, func() {
		key := s.keyChain.DeriveKey(user.HashedPassword, user.Salt)
		sealed, sealErr = s.keyChain.Seal(key, plaintext)
	}); err != nil {
		return nil, fmt.Errorf("encryption did not complete: %w", err)
	}
	if sealErr != nil {
		return nil, fmt.Errorf("sealing content failed: %w", sealErr)
	}
	return sealed, nil
}

// appendAudit records an audit entry; failures are logged, never surfaced.
func (s *documentService) appendAudit(ctx context.Context, actor models.User, docID int64, action string) {
	entry := models.AccessLog{
		UserUUID: actor.UUID,
		Action:   action,
	}
	if docID != 0 {
		entry.DocUUID = strconv.FormatInt(docID, 10)
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("action", action).Msg("failed to append audit entry")
	}
}
