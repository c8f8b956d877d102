package handler

import (
	"log/slog"
	"net/http"
	"time"

	"parley/internal/domain/models"
	"parley/internal/domain/services"
	"parley/internal/httputil"
	"parley/internal/metrics"
)

// DocumentHandler serves versioned-document requests.
type DocumentHandler struct {
	artifacts services.ArtifactService
	logger    *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(artifacts services.ArtifactService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		artifacts: artifacts,
		logger:    logger,
	}
}

// ListVersions returns every version of a document, oldest first.
// GET /api/document?id=
func (h *DocumentHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	versions, err := h.artifacts.ListDocumentVersions(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if len(versions) == 0 {
		httputil.RespondError(w, http.StatusNotFound, "document not found")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, versions)
}

type saveDocumentRequest struct {
	Title   string              `json:"title"`
	Content string              `json:"content"`
	Kind    models.DocumentKind `json:"kind"`
}

// SaveVersion appends a new version of a document. Saving under an id
// that already has versions creates another version, never an update.
// POST /api/document?id=
func (h *DocumentHandler) SaveVersion(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	var req saveDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.artifacts.SaveDocument(r.Context(), &services.SaveDocumentRequest{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Kind:    req.Kind,
		UserID:  httputil.GetUserID(r),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.DocumentVersionsTotal.WithLabelValues(string(doc.Kind)).Inc()
	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// DeleteVersionsAfter removes every version newer than the given
// timestamp, answering with the deleted versions.
// DELETE /api/document?id=&timestamp=
func (h *DocumentHandler) DeleteVersionsAfter(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	raw := r.URL.Query().Get("timestamp")
	if raw == "" {
		httputil.RespondError(w, http.StatusBadRequest, "timestamp is required")
		return
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "timestamp must be RFC 3339")
		return
	}

	deleted, err := h.artifacts.DeleteVersionsAfter(r.Context(), id, ts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deleted)
}
