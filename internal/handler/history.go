package handler

import (
	"log/slog"
	"net/http"

	"parley/internal/domain/services"
	"parley/internal/httputil"
)

// HistoryHandler serves the paginated chat history listing.
type HistoryHandler struct {
	history services.HistoryService
	logger  *slog.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history services.HistoryService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// ListHistory pages through the user's chats, newest first.
// GET /api/history?limit=&starting_after=&ending_before=
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	startingAfter := r.URL.Query().Get("starting_after")
	endingBefore := r.URL.Query().Get("ending_before")

	if startingAfter != "" && endingBefore != "" {
		httputil.RespondError(w, http.StatusBadRequest,
			"only one of starting_after or ending_before can be provided")
		return
	}

	req := &services.ListChatsRequest{
		UserID:        httputil.GetUserID(r),
		Limit:         queryInt(r, "limit", 10),
		StartingAfter: startingAfter,
		EndingBefore:  endingBefore,
	}

	page, err := h.history.ListChats(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}
