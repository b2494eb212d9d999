package http

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/models"
)

// stubAuthService implements service.AuthService with overridable funcs.
// Unset funcs fail loudly so tests only exercise what they declare.
type stubAuthService struct {
	registerFn   func(ctx context.Context, username, password, role string) (models.User, error)
	loginFn      func(ctx context.Context, username, password string) (models.User, error)
	getUserFn    func(ctx context.Context, username string) (models.User, error)
	createTknFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

var errStubNotConfigured = errors.New("stub method not configured")

func (s *stubAuthService) RegisterUser(ctx context.Context, username, password, role string) (models.User, error) {
	if s.registerFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	if s.loginFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if s.getUserFn == nil {
		return models.User{}, errStubNotConfigured
	}
	return s.getUserFn(ctx, username)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTknFn == nil {
		return models.Token{SignedString: "stub-token", Username: user.Username}, nil
	}
	return s.createTknFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn == nil {
		return models.Token{}, errStubNotConfigured
	}
	return s.parseTokenFn(ctx, tokenString)
}

// stubDocumentService implements service.DocumentService with overridable funcs.
type stubDocumentService struct {
	uploadFn     func(ctx context.Context, actor models.User, upload service.UploadRequest) (models.Document, error)
	listFn       func(ctx context.Context, actor models.User, skip, limit uint64) ([]models.Document, error)
	previewFn    func(ctx context.Context, actor models.User, docID int64) (models.DocumentPreview, error)
	downloadFn   func(ctx context.Context, actor models.User, docID int64) (service.DownloadResult, error)
	searchFn     func(ctx context.Context, actor models.User, query string, limit int) ([]models.SearchResult, error)
	accessLogsFn func(ctx context.Context, actor models.User, skip, limit uint64) ([]models.AccessLog, error)
	healthFn     func(ctx context.Context) models.HealthResponse
}

func (s *stubDocumentService) Upload(ctx context.Context, actor models.User, upload service.UploadRequest) (models.Document, error) {
	if s.uploadFn == nil {
		return models.Document{}, errStubNotConfigured
	}
	return s.uploadFn(ctx, actor, upload)
}

func (s *stubDocumentService) ListVisible(ctx context.Context, actor models.User, skip, limit uint64) ([]models.Document, error) {
	if s.listFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listFn(ctx, actor, skip, limit)
}

func (s *stubDocumentService) Preview(ctx context.Context, actor models.User, docID int64) (models.DocumentPreview, error) {
	if s.previewFn == nil {
		return models.DocumentPreview{}, errStubNotConfigured
	}
	return s.previewFn(ctx, actor, docID)
}

func (s *stubDocumentService) Download(ctx context.Context, actor models.User, docID int64) (service.DownloadResult, error) {
	if s.downloadFn == nil {
		return service.DownloadResult{}, errStubNotConfigured
	}
	return s.downloadFn(ctx, actor, docID)
}

func (s *stubDocumentService) Search(ctx context.Context, actor models.User, query string, limit int) ([]models.SearchResult, error) {
	if s.searchFn == nil {
		return nil, errStubNotConfigured
	}
	return s.searchFn(ctx, actor, query, limit)
}

func (s *stubDocumentService) AccessLogs(ctx context.Context, actor models.User, skip, limit uint64) ([]models.AccessLog, error) {
	if s.accessLogsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.accessLogsFn(ctx, actor, skip, limit)
}

func (s *stubDocumentService) Health(ctx context.Context) models.HealthResponse {
	if s.healthFn == nil {
		return models.HealthResponse{Status: "healthy"}
	}
	return s.healthFn(ctx)
}

// testActor is the account the stub auth layer resolves for "good-token".
var testActor = models.User{
	UUID:     "actor-uuid",
	Username: "alice",
	Role:     models.RoleGeneral,
}

// authStubForActor accepts exactly "good-token" and resolves it to actor.
func authStubForActor(actor models.User) *stubAuthService {
	return &stubAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Username: actor.Username, SignedString: tokenString}, nil
		},
		getUserFn: func(_ context.Context, username string) (models.User, error) {
			return actor, nil
		},
	}
}

func newStubbedHandler(auth service.AuthService, documents service.DocumentService, uploadDir string) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:     auth,
			DocumentService: documents,
		},
		uploadDir: uploadDir,
		logger:    logger.Nop(),
	}
}
