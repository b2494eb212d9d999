package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-vault/internal/analysis"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to disk.
const maxUploadMemory = 32 << 20

// upload accepts a multipart form with a single "file" part, stores it as a
// transient plaintext file in the upload directory, and hands it to the
// document service. The service removes the transient file on every exit
// path.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing `file` form part")
		http.Error(w, "missing `file` form part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tempPath, err := h.saveTransientUpload(file)
	if err != nil {
		log.Err(err).Msg("failed to store transient upload")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// prefer the extension over the client-declared media type: browsers
	// routinely send application/octet-stream for .docx
	mimeType := analysis.MimeForFilename(header.Filename)
	if mimeType == "" {
		mimeType = header.Header.Get("Content-Type")
	}

	document, err := h.services.DocumentService.Upload(ctx, actor, service.UploadRequest{
		Filename: header.Filename,
		MimeType: mimeType,
		TempPath: tempPath,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, document, http.StatusCreated)
}

// listDocuments returns the documents visible to the authenticated user,
// newest first. Supports skip/limit query parameters.
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	skip, limit := pagingParams(r)

	documents, err := h.services.DocumentService.ListVisible(ctx, actor, skip, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if documents == nil {
		documents = []models.Document{}
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

// preview returns a single document's metadata plus a truncated decrypted
// content preview.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	docID, err := docIDParam(r)
	if err != nil {
		http.Error(w, "invalid docid", http.StatusBadRequest)
		return
	}

	previewed, err := h.services.DocumentService.Preview(ctx, actor, docID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, previewed, http.StatusOK)
}

// download streams the full decrypted document content as an attachment.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	docID, err := docIDParam(r)
	if err != nil {
		http.Error(w, "invalid docid", http.StatusBadRequest)
		return
	}

	result, err := h.services.DocumentService.Download(ctx, actor, docID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write download body")
	}
}

// search runs semantic search over the index. Query parameters: q (required),
// limit (optional, defaults server-side).
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.services.DocumentService.Search(ctx, actor, query, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

// accessLogs lists the audit trail, newest first. The service enforces the
// role gate.
func (h *Handler) accessLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	skip, limit := pagingParams(r)

	entries, err := h.services.DocumentService.AccessLogs(ctx, actor, skip, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.AccessLog{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// saveTransientUpload copies the multipart part into a fresh file in the
// upload directory and returns its path.
func (h *Handler) saveTransientUpload(file io.Reader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o700); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	tempFile, err := os.CreateTemp(h.uploadDir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("creating transient upload file: %w", err)
	}

	if _, err := io.Copy(tempFile, file); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("writing transient upload file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("closing transient upload file: %w", err)
	}

	return tempFile.Name(), nil
}

// docIDParam parses the {docid} route parameter.
func docIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "docid"), 10, 64)
}

// pagingParams parses optional skip/limit query parameters; malformed or
// absent values default to zero, leaving defaults to the storage layer.
func pagingParams(r *http.Request) (skip, limit uint64) {
	skip, _ = strconv.ParseUint(r.URL.Query().Get("skip"), 10, 64)
	limit, _ = strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	return skip, limit
}
