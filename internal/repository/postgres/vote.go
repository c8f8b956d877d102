package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
)

// VoteRepository implements repositories.VoteRepository on PostgreSQL.
type VoteRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(config *RepositoryConfig) repositories.VoteRepository {
	return &VoteRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// Upsert inserts or overrides the vote for a (chat, message) pair in a
// single atomic statement keyed on the compound unique constraint.
func (r *VoteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	query := `
		INSERT INTO votes (chat_id, message_id, is_upvoted)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id, message_id)
		DO UPDATE SET is_upvoted = EXCLUDED.is_upvoted
	`

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, vote.ChatID, vote.MessageID, vote.IsUpvoted)
	if err != nil {
		r.logger.Error("failed to vote message",
			"chat_id", vote.ChatID,
			"message_id", vote.MessageID,
			"error", err,
		)
		return fmt.Errorf("vote message: %w", err)
	}

	return nil
}

// ListByChatID returns every vote in a chat
func (r *VoteRepository) ListByChatID(ctx context.Context, chatID string) ([]models.Vote, error) {
	query := `
		SELECT chat_id, message_id, is_upvoted
		FROM votes
		WHERE chat_id = $1
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, chatID)
	if err != nil {
		r.logger.Error("failed to get votes by chat id", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var vote models.Vote
		if err := rows.Scan(&vote.ChatID, &vote.MessageID, &vote.IsUpvoted); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, vote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}

	return votes, nil
}

// DeleteByChatID removes every vote in a chat
func (r *VoteRepository) DeleteByChatID(ctx context.Context, chatID string) (int64, error) {
	query := `DELETE FROM votes WHERE chat_id = $1`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, chatID)
	if err != nil {
		r.logger.Error("failed to delete votes by chat id", "chat_id", chatID, "error", err)
		return 0, fmt.Errorf("delete votes: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteByMessageIDs removes the votes attached to the given messages
func (r *VoteRepository) DeleteByMessageIDs(ctx context.Context, chatID string, messageIDs []string) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}

	query := `DELETE FROM votes WHERE chat_id = $1 AND message_id = ANY($2)`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, chatID, messageIDs)
	if err != nil {
		r.logger.Error("failed to delete votes by message ids", "chat_id", chatID, "error", err)
		return 0, fmt.Errorf("delete votes: %w", err)
	}

	return result.RowsAffected(), nil
}
