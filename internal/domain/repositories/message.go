package repositories

import (
	"context"
	"time"

	"parley/internal/domain/models"
)

// MessageRepository persists chat messages.
type MessageRepository interface {
	// CreateBatch bulk-inserts messages. The batch is all-or-nothing when
	// run inside a transaction; there is no per-row fallback.
	CreateBatch(ctx context.Context, messages []models.Message) error

	// ListByChatID returns a chat's messages ordered by createdAt ascending.
	ListByChatID(ctx context.Context, chatID string) ([]models.Message, error)

	// GetByID returns the message or an error wrapping domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Message, error)

	// IDsByChatIDAfter returns ids of messages with createdAt >= ts.
	// The boundary is inclusive, unlike document version deletion.
	IDsByChatIDAfter(ctx context.Context, chatID string, ts time.Time) ([]string, error)

	// DeleteByIDs removes the given messages from a chat and reports how
	// many rows were deleted.
	DeleteByIDs(ctx context.Context, chatID string, ids []string) (int64, error)

	// DeleteByChatID removes every message in a chat.
	DeleteByChatID(ctx context.Context, chatID string) (int64, error)
}
