package services

import (
	"context"

	"parley/internal/domain/models"
)

// ConversationService defines the business logic for message persistence
// within a chat.
type ConversationService interface {
	// SaveMessages validates and bulk-inserts messages.
	SaveMessages(ctx context.Context, messages []models.Message) error

	// ListMessages returns a chat's messages, oldest first.
	ListMessages(ctx context.Context, chatID string) ([]models.Message, error)

	// GetMessage retrieves a single message by id.
	GetMessage(ctx context.Context, id string) (*models.Message, error)

	// DeleteTrailingMessages removes the identified message and everything
	// after it in its chat (createdAt >= the message's createdAt, boundary
	// inclusive), together with the affected votes, in one transaction.
	// A message id that no longer exists is a no-op.
	DeleteTrailingMessages(ctx context.Context, messageID string) error
}

// VoteService defines the business logic for message voting.
type VoteService interface {
	// Vote records an up/down vote for a message, overriding any previous
	// vote for the same (chat, message) pair.
	Vote(ctx context.Context, req *VoteRequest) error

	// ListVotes returns every vote in a chat. The chat must exist.
	ListVotes(ctx context.Context, chatID string) ([]models.Vote, error)
}

// VoteRequest is the DTO for casting a vote.
type VoteRequest struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
	Type      string `json:"type"` // "up" | "down"
}
