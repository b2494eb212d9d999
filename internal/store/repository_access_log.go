package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

// defaultAccessLogLimit caps an unbounded audit listing.
const defaultAccessLogLimit = 1000

// accessLogRepository is the SQL-backed implementation of
// [AccessLogRepository]. The access_logs table is strictly append-only.
type accessLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccessLogRepository constructs an [AccessLogRepository] backed by the
// provided database connection and logger.
func NewAccessLogRepository(db *DB, logger *logger.Logger) AccessLogRepository {
	logger.Debug().Msg("creating access log repository")
	return &accessLogRepository{
		db:     db,
		logger: logger,
	}
}

// Append writes a single audit entry. The timestamp is assigned by the
// database.
func (r *accessLogRepository) Append(ctx context.Context, entry models.AccessLog) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, appendAccessLog, entry.UserUUID, entry.DocUUID, entry.Action); err != nil {
		log.Err(err).Str("func", "*accessLogRepository.Append").Msg("error appending audit entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// List returns audit entries newest first. A zero limit falls back to
// [defaultAccessLogLimit].
func (r *accessLogRepository) List(ctx context.Context, skip, limit uint64) ([]models.AccessLog, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		limit = defaultAccessLogLimit
	}

	rows, err := r.db.QueryContext(ctx, listAccessLogs, limit, skip)
	if err != nil {
		log.Err(err).Str("func", "*accessLogRepository.List").Msg("error executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.AccessLog
	for rows.Next() {
		var entry models.AccessLog
		if err := rows.Scan(&entry.LogID, &entry.UserUUID, &entry.DocUUID, &entry.Action, &entry.Timestamp); err != nil {
			log.Err(err).Str("func", "*accessLogRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
