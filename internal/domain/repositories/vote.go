package repositories

import (
	"context"

	"parley/internal/domain/models"
)

// VoteRepository persists message votes.
type VoteRepository interface {
	// Upsert inserts the vote or, when a row for (chatId, messageId)
	// already exists, updates isUpvoted in place. The operation is a
	// single atomic statement keyed on the compound unique constraint, so
	// concurrent first votes cannot race into a duplicate-key failure.
	Upsert(ctx context.Context, vote *models.Vote) error

	// ListByChatID returns every vote in a chat.
	ListByChatID(ctx context.Context, chatID string) ([]models.Vote, error)

	// DeleteByChatID removes every vote in a chat.
	DeleteByChatID(ctx context.Context, chatID string) (int64, error)

	// DeleteByMessageIDs removes the votes attached to the given messages.
	DeleteByMessageIDs(ctx context.Context, chatID string, messageIDs []string) (int64, error)
}
