// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// Storages aggregates every persistence component for injection into the
// service layer.
type Storages struct {
	UserRepository      UserRepository
	DocumentRepository  DocumentRepository
	AccessLogRepository AccessLogRepository
	BlobStorage         BlobStorage
}

// NewStorages wires all repositories onto a single database connection and
// the blob directory from configuration.
func NewStorages(db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	blobs, err := NewBlobStorage(cfg.Files.BlobDir, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		DocumentRepository:  NewDocumentRepository(db, log),
		AccessLogRepository: NewAccessLogRepository(db, log),
		BlobStorage:         blobs,
	}, nil
}
