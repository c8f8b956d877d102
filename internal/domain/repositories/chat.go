package repositories

import (
	"context"

	"parley/internal/domain/models"
)

// ChatPageOptions selects one page of a user's chat history. At most one
// of StartingAfter / EndingBefore is meaningful per request; a cursor
// that does not resolve to an existing chat falls back to an unfiltered
// page.
type ChatPageOptions struct {
	Limit         int
	StartingAfter string // page of chats strictly older than this chat
	EndingBefore  string // page of chats strictly newer than this chat
}

// ChatRepository persists chat sessions.
type ChatRepository interface {
	// Create inserts a new chat. A duplicate id yields a ConflictError.
	Create(ctx context.Context, chat *models.Chat) error

	// GetByID returns the chat or an error wrapping domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Chat, error)

	// ListByUserID pages through a user's chats newest-first using
	// createdAt cursors. It fetches limit+1 rows and trims the extra to
	// compute HasMore.
	ListByUserID(ctx context.Context, userID string, opts ChatPageOptions) (*models.ChatPage, error)

	// UpdateVisibility flips a chat between public and private in place.
	UpdateVisibility(ctx context.Context, chatID string, visibility models.Visibility) error

	// Delete removes the chat row and returns it. Dependent votes,
	// messages and streams are removed by the service-level cascade.
	Delete(ctx context.Context, id string) (*models.Chat, error)
}
