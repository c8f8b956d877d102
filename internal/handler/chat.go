package handler

import (
	"log/slog"
	"net/http"

	"parley/internal/domain/models"
	"parley/internal/domain/services"
	"parley/internal/httputil"
	"parley/internal/metrics"
)

// ChatHandler serves chat-session persistence requests.
type ChatHandler struct {
	history      services.HistoryService
	conversation services.ConversationService
	streams      services.StreamService
	logger       *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	history services.HistoryService,
	conversation services.ConversationService,
	streams services.StreamService,
	logger *slog.Logger,
) *ChatHandler {
	return &ChatHandler{
		history:      history,
		conversation: conversation,
		streams:      streams,
		logger:       logger,
	}
}

type createChatRequest struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Visibility models.Visibility `json:"visibility"`
	Messages   []models.Message  `json:"messages"`
	StreamID   string            `json:"streamId"`
}

// CreateChat persists a chat session together with its initial messages
// and, when supplied, a resumable-stream id.
// POST /api/chat
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req createChatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat, err := h.history.SaveChat(r.Context(), &services.SaveChatRequest{
		ID:         req.ID,
		UserID:     httputil.GetUserID(r),
		Title:      req.Title,
		Visibility: req.Visibility,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	if len(req.Messages) > 0 {
		for i := range req.Messages {
			req.Messages[i].ChatID = chat.ID
		}
		if err := h.conversation.SaveMessages(r.Context(), req.Messages); err != nil {
			handleError(w, err)
			return
		}
		for _, m := range req.Messages {
			metrics.MessagesSavedTotal.WithLabelValues(m.Role).Inc()
		}
	}

	if req.StreamID != "" {
		if err := h.streams.CreateStream(r.Context(), req.StreamID, chat.ID); err != nil {
			handleError(w, err)
			return
		}
	}

	httputil.RespondJSON(w, http.StatusCreated, chat)
}

// DeleteChat removes a chat and everything hanging off it, answering
// with the deleted chat.
// DELETE /api/chat?id=
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	chat, err := h.history.DeleteChat(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.ChatsDeletedTotal.Inc()
	httputil.RespondJSON(w, http.StatusOK, chat)
}

// ListMessages returns a chat's messages, oldest first.
// GET /api/chat/{id}/messages
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "chat id is required")
		return
	}

	messages, err := h.conversation.ListMessages(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}

// ListStreams returns a chat's stream ids, oldest first.
// GET /api/chat/{id}/streams
func (h *ChatHandler) ListStreams(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "chat id is required")
		return
	}

	streamIDs, err := h.streams.ListStreamIDs(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, streamIDs)
}

type updateVisibilityRequest struct {
	ChatID     string            `json:"chatId"`
	Visibility models.Visibility `json:"visibility"`
}

// UpdateVisibility flips a chat between public and private.
// PATCH /api/chat/visibility
func (h *ChatHandler) UpdateVisibility(w http.ResponseWriter, r *http.Request) {
	var req updateVisibilityRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChatID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "chatId is required")
		return
	}

	if err := h.history.UpdateVisibility(r.Context(), req.ChatID, req.Visibility); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type deleteTrailingRequest struct {
	ID string `json:"id"`
}

// DeleteTrailingMessages removes a message and everything after it in
// its chat. A message id that no longer exists is answered 204 as well.
// POST /api/messages/delete-trailing
func (h *ChatHandler) DeleteTrailingMessages(w http.ResponseWriter, r *http.Request) {
	var req deleteTrailingRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.conversation.DeleteTrailingMessages(r.Context(), req.ID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
