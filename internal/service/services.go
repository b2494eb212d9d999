package service

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/embedding"
	"github.com/MKhiriev/go-doc-vault/internal/index"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

func NewServices(
	storages *store.Storages,
	keyChain crypto.KeyChainService,
	embedder embedding.Embedder,
	vectorIndex index.VectorIndex,
	pool CryptoPool,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	policy := NewAccessPolicy()
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, keyChain, pool, cfg.App, logger),
		DocumentService: NewDocumentService(storages, keyChain, policy, embedder, vectorIndex, pool, logger),
	}
}
