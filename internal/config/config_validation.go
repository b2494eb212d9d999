// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields left unset by all configuration sources.
const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 60 * time.Second
	defaultDBDriver       = "sqlite3"
	defaultDSN            = "docvault.db"
	defaultBlobDir        = "encrypted_docs"
	defaultUploadDir      = "uploaded_docs"
	defaultVectorsPath    = "docvault.index"
	defaultMappingPath    = "docid_map.json"
	defaultDimension      = 384
	defaultCryptoWorkers  = 4
	defaultTokenIssuer    = "go-doc-vault"
	defaultTokenDuration  = 30 * time.Minute
	defaultEmbedderMode   = "local"
)

// validate applies defaults for unset fields and checks that the final
// merged [StructuredConfig] satisfies all application invariants before it
// is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Storage.Files.BlobDir == "" {
		cfg.Storage.Files.BlobDir = defaultBlobDir
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = defaultUploadDir
	}
	if cfg.Index.VectorsPath == "" {
		cfg.Index.VectorsPath = defaultVectorsPath
	}
	if cfg.Index.MappingPath == "" {
		cfg.Index.MappingPath = defaultMappingPath
	}
	if cfg.Index.Dimension == 0 {
		cfg.Index.Dimension = defaultDimension
	}
	if cfg.Workers.CryptoPoolSize == 0 {
		cfg.Workers.CryptoPoolSize = defaultCryptoWorkers
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Embedder.Mode == "" {
		cfg.Embedder.Mode = defaultEmbedderMode
	}

	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}

	switch cfg.Embedder.Mode {
	case "local":
	case "remote":
		if cfg.Embedder.RemoteURL == "" {
			return ErrInvalidEmbedderConfigs
		}
	default:
		return ErrInvalidEmbedderConfigs
	}

	if cfg.Index.Dimension < 1 {
		return ErrInvalidIndexConfigs
	}
	if cfg.Workers.CryptoPoolSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
