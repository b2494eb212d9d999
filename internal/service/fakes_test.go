package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// inlinePool runs crypto jobs synchronously; the orchestration under test
// does not care which goroutine does the work.
type inlinePool struct{}

func (inlinePool) Do(_ context.Context, fn func()) error {
	fn()
	return nil
}

// memUserRepository is an in-memory store.UserRepository.
type memUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by username
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]models.User)}
}

func (m *memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	return user, nil
}

func (m *memUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (m *memUserRepository) GetUserByUUID(_ context.Context, uuid string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.UUID == uuid {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

// memDocumentRepository is an in-memory store.DocumentRepository.
type memDocumentRepository struct {
	mu     sync.Mutex
	nextID int64
	docs   map[int64]models.Document
}

func newMemDocumentRepository() *memDocumentRepository {
	return &memDocumentRepository{docs: make(map[int64]models.Document)}
}

func (m *memDocumentRepository) CreateDocument(_ context.Context, document models.Document) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	document.DocID = m.nextID
	document.UploadDate = time.Now()
	m.docs[document.DocID] = document
	return document, nil
}

func (m *memDocumentRepository) GetDocumentByID(_ context.Context, docID int64) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	document, ok := m.docs[docID]
	if !ok {
		return models.Document{}, store.ErrDocumentNotFound
	}
	return document, nil
}

func (m *memDocumentRepository) ListDocuments(_ context.Context, filter store.DocumentFilter) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inCategories := func(category string) bool {
		for _, c := range filter.Categories {
			if c == category {
				return true
			}
		}
		return false
	}

	var result []models.Document
	for id := m.nextID; id >= 1; id-- {
		document, ok := m.docs[id]
		if !ok {
			continue
		}
		if filter.All ||
			(filter.OwnerUUID != "" && document.OwnerUUID == filter.OwnerUUID) ||
			inCategories(document.Category) {
			result = append(result, document)
		}
	}
	return result, nil
}

// memAccessLogRepository is an in-memory store.AccessLogRepository.
type memAccessLogRepository struct {
	mu      sync.Mutex
	entries []models.AccessLog
}

func (m *memAccessLogRepository) Append(_ context.Context, entry models.AccessLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.LogID = int64(len(m.entries) + 1)
	entry.Timestamp = time.Now()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memAccessLogRepository) List(_ context.Context, skip, limit uint64) ([]models.AccessLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.AccessLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		result = append(result, m.entries[i])
	}
	if skip > uint64(len(result)) {
		return nil, nil
	}
	result = result[skip:]
	if limit > 0 && limit < uint64(len(result)) {
		result = result[:limit]
	}
	return result, nil
}

func (m *memAccessLogRepository) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		actions = append(actions, entry.Action)
	}
	return actions
}

// memBlobStorage is an in-memory store.BlobStorage.
type memBlobStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemBlobStorage() *memBlobStorage {
	return &memBlobStorage{blobs: make(map[string][]byte)}
}

func (m *memBlobStorage) SaveBlob(_ context.Context, name string, sealed []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	locator := "mem://" + name
	m.blobs[locator] = append([]byte(nil), sealed...)
	return locator, nil
}

func (m *memBlobStorage) LoadBlob(_ context.Context, locator string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sealed, ok := m.blobs[locator]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrBlobRead, locator)
	}
	return sealed, nil
}

func (m *memBlobStorage) RemoveBlob(_ context.Context, locator string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, locator)
	return nil
}
