package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

// documentRepository is the SQL-backed implementation of [DocumentRepository].
// Document rows are append-only: there is no update or delete path.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDocument persists a new document metadata row and returns it with the
// server-assigned DocID and UploadDate filled in.
//
// A transient driver failure (connection loss, deadlock rollback) is retried
// once before giving up; the row was not written in that case since the
// INSERT is a single statement.
func (r *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDocument,
		document.OwnerUUID, document.Filename, document.Filepath, document.Category, document.Author, document.Summary)

	if err := row.Err(); err != nil && r.db.classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*documentRepository.CreateDocument").Msg("transient DB error, retrying insert")
		row = r.db.QueryRowContext(ctx, createDocument,
			document.OwnerUUID, document.Filename, document.Filepath, document.Category, document.Author, document.Summary)
	}

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan server-assigned fields
	if err := row.Scan(&document.DocID, &document.UploadDate); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}

// GetDocumentByID retrieves a single document row by its docid.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrDocumentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *documentRepository) GetDocumentByID(ctx context.Context, docID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	row := r.db.QueryRowContext(ctx, getDocumentByID, docID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.GetDocumentByID").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&document.DocID, &document.OwnerUUID, &document.Filename, &document.Filepath,
		&document.Category, &document.Author, &document.Summary, &document.UploadDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.GetDocumentByID").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}

// ListDocuments returns document rows matching filter, newest first.
//
// The WHERE clause is assembled with squirrel: no filter at all for
// unrestricted listings, otherwise an OR of ownership and category
// membership. A filter that matches nothing (zero value) short-circuits to
// an empty result without touching the database.
func (r *documentRepository) ListDocuments(ctx context.Context, filter DocumentFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("docid", "owner_uuid", "filename", "filepath", "category", "author", "summary", "upload_date").
		From("documents").
		OrderBy("docid DESC").
		PlaceholderFormat(sq.Dollar)

	if !filter.All {
		or := sq.Or{}
		if filter.OwnerUUID != "" {
			or = append(or, sq.Eq{"owner_uuid": filter.OwnerUUID})
		}
		if len(filter.Categories) > 0 {
			or = append(or, sq.Eq{"category": filter.Categories})
		}
		if len(or) == 0 {
			return nil, nil
		}
		builder = builder.Where(or)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Skip > 0 {
		builder = builder.Offset(filter.Skip)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error building listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var documents []models.Document
	for rows.Next() {
		var document models.Document
		if err := rows.Scan(&document.DocID, &document.OwnerUUID, &document.Filename, &document.Filepath,
			&document.Category, &document.Author, &document.Summary, &document.UploadDate); err != nil {
			log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		documents = append(documents, document)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}
