package http

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
)

type Handler struct {
	services *service.Services

	// uploadDir receives the transient plaintext copy of every multipart
	// upload before it is handed to the document service.
	uploadDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		uploadDir: cfg.UploadDir,
		logger:    logger,
	}
}
