package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// blobStorage persists sealed document blobs as individual files under a
// single directory. Locators returned by SaveBlob are absolute-enough paths
// that LoadBlob and RemoveBlob accept back verbatim; callers never construct
// locators themselves.
type blobStorage struct {
	dir    string
	logger *logger.Logger
}

// NewBlobStorage constructs a [BlobStorage] rooted at dir, creating the
// directory if it does not exist yet.
func NewBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	logger.Debug().Str("dir", dir).Msg("creating blob storage")

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}

	return &blobStorage{dir: dir, logger: logger}, nil
}

// SaveBlob writes sealed bytes under name and returns the locator to store
// in the document row. The write goes through a temp file and rename so a
// crash never leaves a partial blob at the final locator.
func (b *blobStorage) SaveBlob(ctx context.Context, name string, sealed []byte) (string, error) {
	log := logger.FromContext(ctx)

	locator := filepath.Join(b.dir, name)

	tmp, err := os.CreateTemp(b.dir, name+".tmp-*")
	if err != nil {
		log.Err(err).Str("func", "*blobStorage.SaveBlob").Msg("error creating temp blob file")
		return "", fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}

	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}

	if err := os.Rename(tmp.Name(), locator); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}

	return locator, nil
}

// LoadBlob reads the sealed bytes back from a locator previously returned by
// SaveBlob.
func (b *blobStorage) LoadBlob(ctx context.Context, locator string) ([]byte, error) {
	log := logger.FromContext(ctx)

	sealed, err := os.ReadFile(locator)
	if err != nil {
		log.Err(err).Str("func", "*blobStorage.LoadBlob").Str("locator", locator).Msg("error reading blob")
		return nil, fmt.Errorf("%w: %w", ErrBlobRead, err)
	}

	return sealed, nil
}

// RemoveBlob deletes the blob at locator. Used to undo a blob write when the
// subsequent metadata insert fails.
func (b *blobStorage) RemoveBlob(ctx context.Context, locator string) error {
	if err := os.Remove(locator); err != nil {
		return fmt.Errorf("%w: %w", ErrBlobWrite, err)
	}
	return nil
}
