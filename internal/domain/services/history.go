package services

import (
	"context"

	"parley/internal/domain/models"
)

// HistoryService defines the business logic for chat sessions and the
// paginated history listing.
type HistoryService interface {
	// SaveChat validates and inserts a new chat session.
	SaveChat(ctx context.Context, req *SaveChatRequest) (*models.Chat, error)

	// GetChat retrieves a chat by id.
	GetChat(ctx context.Context, id string) (*models.Chat, error)

	// ListChats pages through a user's chats, newest first. At most one
	// cursor may be supplied.
	ListChats(ctx context.Context, req *ListChatsRequest) (*models.ChatPage, error)

	// DeleteChat removes a chat and cascades to its votes, messages and
	// streams in one transaction, returning the deleted chat.
	DeleteChat(ctx context.Context, id string) (*models.Chat, error)

	// UpdateVisibility flips a chat between public and private.
	UpdateVisibility(ctx context.Context, chatID string, visibility models.Visibility) error
}

// SaveChatRequest is the DTO for creating a chat.
type SaveChatRequest struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	Title      string            `json:"title"`
	Visibility models.Visibility `json:"visibility"`
}

// ListChatsRequest selects a history page for a user.
type ListChatsRequest struct {
	UserID        string
	Limit         int
	StartingAfter string
	EndingBefore  string
}
