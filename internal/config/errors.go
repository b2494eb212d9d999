package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unsupported database driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidIndexConfigs indicates invalid vector index settings
	// (for example, a non-positive dimensionality).
	ErrInvalidIndexConfigs = errors.New("invalid index configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker pool settings
	// (for example, a non-positive pool size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidEmbedderConfigs indicates an unknown embedder mode or a
	// remote mode without a URL.
	ErrInvalidEmbedderConfigs = errors.New("invalid embedder configuration")
)
