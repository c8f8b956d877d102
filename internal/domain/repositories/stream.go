package repositories

import (
	"context"

	"parley/internal/domain/models"
)

// StreamRepository persists resumable-stream identifiers.
type StreamRepository interface {
	// Create records a stream id for a chat. A duplicate id yields a
	// ConflictError.
	Create(ctx context.Context, stream *models.Stream) error

	// ListIDsByChatID returns a chat's stream ids ordered by createdAt
	// ascending; ids only, no row payload.
	ListIDsByChatID(ctx context.Context, chatID string) ([]string, error)

	// DeleteByChatID removes every stream row for a chat.
	DeleteByChatID(ctx context.Context, chatID string) (int64, error)
}
