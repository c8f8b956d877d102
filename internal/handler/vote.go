package handler

import (
	"log/slog"
	"net/http"

	"parley/internal/domain/services"
	"parley/internal/httputil"
	"parley/internal/metrics"
)

// VoteHandler serves message-vote requests.
type VoteHandler struct {
	votes  services.VoteService
	logger *slog.Logger
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(votes services.VoteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		votes:  votes,
		logger: logger,
	}
}

// ListVotes returns every vote in a chat.
// GET /api/vote?chatId=
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chatId")
	if chatID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "chatId is required")
		return
	}

	votes, err := h.votes.ListVotes(r.Context(), chatID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, votes)
}

// Vote casts an up/down vote for a message, overriding any earlier vote
// for the same pair. The front end expects a bare text confirmation.
// PATCH|POST /api/vote
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req services.VoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.votes.Vote(r.Context(), &req); err != nil {
		handleError(w, err)
		return
	}

	metrics.VotesTotal.WithLabelValues(req.Type).Inc()
	httputil.RespondText(w, http.StatusOK, "Message voted")
}
