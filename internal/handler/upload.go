package handler

import (
	"log/slog"
	"net/http"

	"parley/internal/blob"
	"parley/internal/httputil"
)

// UploadHandler brokers file uploads to the blob store. Acceptance rules
// come from the embedded upload policy.
type UploadHandler struct {
	store  blob.Store
	policy *blob.UploadPolicy
	logger *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store blob.Store, policy *blob.UploadPolicy, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

// Upload accepts a multipart file and hands it to the blob store.
// POST /api/files/upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.policy.MaxSizeBytes+4096)

	if err := r.ParseMultipartForm(h.policy.MaxSizeBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file is too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "file is empty")
		return
	}
	if header.Size > h.policy.MaxSizeBytes {
		httputil.RespondError(w, http.StatusBadRequest, "file is too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !h.policy.Allows(contentType) {
		httputil.RespondError(w, http.StatusBadRequest, "file type should be JPEG or PNG")
		return
	}

	object, err := h.store.Put(r.Context(), header.Filename, contentType, file)
	if err != nil {
		h.logger.Error("upload failed", "filename", header.Filename, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, object)
}
