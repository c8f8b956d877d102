package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
)

// StreamRepository implements repositories.StreamRepository on
// PostgreSQL.
type StreamRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewStreamRepository creates a new StreamRepository
func NewStreamRepository(config *RepositoryConfig) repositories.StreamRepository {
	return &StreamRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// Create records a stream id for a chat
func (r *StreamRepository) Create(ctx context.Context, stream *models.Stream) error {
	query := `
		INSERT INTO streams (id, chat_id, created_at)
		VALUES ($1, $2, $3)
	`

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, stream.ID, stream.ChatID, stream.CreatedAt)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("stream %q already exists", stream.ID),
				ResourceType: "stream",
				ResourceID:   stream.ID,
			}
		}
		r.logger.Error("failed to create stream id", "id", stream.ID, "chat_id", stream.ChatID, "error", err)
		return fmt.Errorf("create stream id: %w", err)
	}

	return nil
}

// ListIDsByChatID returns a chat's stream ids, oldest first
func (r *StreamRepository) ListIDsByChatID(ctx context.Context, chatID string) ([]string, error) {
	query := `
		SELECT id
		FROM streams
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, chatID)
	if err != nil {
		r.logger.Error("failed to get stream ids by chat id", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("list stream ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan stream id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stream ids: %w", err)
	}

	return ids, nil
}

// DeleteByChatID removes every stream row for a chat
func (r *StreamRepository) DeleteByChatID(ctx context.Context, chatID string) (int64, error) {
	query := `DELETE FROM streams WHERE chat_id = $1`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, chatID)
	if err != nil {
		r.logger.Error("failed to delete streams by chat id", "chat_id", chatID, "error", err)
		return 0, fmt.Errorf("delete streams: %w", err)
	}

	return result.RowsAffected(), nil
}
