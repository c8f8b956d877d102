package handler

import (
	"log/slog"
	"net/http"

	"parley/internal/domain/models"
	"parley/internal/domain/services"
	"parley/internal/httputil"
)

// SuggestionHandler serves document-suggestion requests.
type SuggestionHandler struct {
	artifacts services.ArtifactService
	logger    *slog.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(artifacts services.ArtifactService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		artifacts: artifacts,
		logger:    logger,
	}
}

// ListSuggestions returns the suggestions attached to any version of a
// document.
// GET /api/suggestions?documentId=
func (h *SuggestionHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	documentID := r.URL.Query().Get("documentId")
	if documentID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "documentId is required")
		return
	}

	suggestions, err := h.artifacts.ListSuggestions(r.Context(), documentID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, suggestions)
}

type saveSuggestionsRequest struct {
	Suggestions []models.Suggestion `json:"suggestions"`
}

// SaveSuggestions bulk-inserts suggestions for a document version.
// POST /api/suggestions
func (h *SuggestionHandler) SaveSuggestions(w http.ResponseWriter, r *http.Request) {
	var req saveSuggestionsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Suggestions) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "suggestions is required")
		return
	}

	if err := h.artifacts.SaveSuggestions(r.Context(), req.Suggestions); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
