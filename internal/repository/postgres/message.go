package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
)

// MessageRepository implements repositories.MessageRepository on
// PostgreSQL. Message parts and attachments are stored as JSONB and
// decoded through the closed part-variant types at this boundary.
type MessageRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(config *RepositoryConfig) repositories.MessageRepository {
	return &MessageRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// CreateBatch bulk-inserts messages in a single pgx batch
func (r *MessageRepository) CreateBatch(ctx context.Context, messages []models.Message) error {
	if len(messages) == 0 {
		return nil
	}

	query := `
		INSERT INTO messages (id, chat_id, role, parts, attachments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for i := range messages {
		msg := &messages[i]

		parts, err := json.Marshal(msg.Parts)
		if err != nil {
			return fmt.Errorf("encode parts for message %s: %w", msg.ID, err)
		}
		attachments, err := json.Marshal(msg.Attachments)
		if err != nil {
			return fmt.Errorf("encode attachments for message %s: %w", msg.ID, err)
		}

		batch.Queue(query, msg.ID, msg.ChatID, msg.Role, parts, attachments, msg.CreatedAt)
	}

	executor := GetExecutor(ctx, r.pool)
	results := executor.SendBatch(ctx, batch)
	defer results.Close()

	for i := range messages {
		if _, err := results.Exec(); err != nil {
			if IsPgDuplicateError(err) {
				return &domain.ConflictError{
					Message:      fmt.Sprintf("message %q already exists", messages[i].ID),
					ResourceType: "message",
					ResourceID:   messages[i].ID,
				}
			}
			r.logger.Error("failed to save messages", "chat_id", messages[i].ChatID, "error", err)
			return fmt.Errorf("save messages: %w", err)
		}
	}

	return nil
}

// ListByChatID returns a chat's messages ordered by createdAt ascending
func (r *MessageRepository) ListByChatID(ctx context.Context, chatID string) ([]models.Message, error) {
	query := `
		SELECT id, chat_id, role, parts, attachments, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, chatID)
	if err != nil {
		r.logger.Error("failed to get messages by chat id", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

// GetByID retrieves a message by id
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `
		SELECT id, chat_id, role, parts, attachments, created_at
		FROM messages
		WHERE id = $1
	`

	executor := GetExecutor(ctx, r.pool)
	row := executor.QueryRow(ctx, query, id)

	msg, err := scanMessage(row)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
		}
		r.logger.Error("failed to get message by id", "id", id, "error", err)
		return nil, fmt.Errorf("get message: %w", err)
	}

	return msg, nil
}

// IDsByChatIDAfter returns ids of messages with createdAt >= ts. The
// inclusive boundary means the reference message itself is included.
func (r *MessageRepository) IDsByChatIDAfter(ctx context.Context, chatID string, ts time.Time) ([]string, error) {
	query := `
		SELECT id
		FROM messages
		WHERE chat_id = $1 AND created_at >= $2
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, chatID, ts)
	if err != nil {
		return nil, fmt.Errorf("find trailing messages: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan message id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate message ids: %w", err)
	}

	return ids, nil
}

// DeleteByIDs removes the given messages from a chat
func (r *MessageRepository) DeleteByIDs(ctx context.Context, chatID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `DELETE FROM messages WHERE chat_id = $1 AND id = ANY($2)`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, chatID, ids)
	if err != nil {
		r.logger.Error("failed to delete messages", "chat_id", chatID, "error", err)
		return 0, fmt.Errorf("delete messages: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteByChatID removes every message in a chat
func (r *MessageRepository) DeleteByChatID(ctx context.Context, chatID string) (int64, error) {
	query := `DELETE FROM messages WHERE chat_id = $1`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, chatID)
	if err != nil {
		r.logger.Error("failed to delete messages by chat id", "chat_id", chatID, "error", err)
		return 0, fmt.Errorf("delete messages: %w", err)
	}

	return result.RowsAffected(), nil
}

// scanMessage decodes one message row, including its JSONB content.
func scanMessage(row pgx.Row) (*models.Message, error) {
	var (
		msg         models.Message
		parts       []byte
		attachments []byte
	)

	err := row.Scan(
		&msg.ID,
		&msg.ChatID,
		&msg.Role,
		&parts,
		&attachments,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(parts, &msg.Parts); err != nil {
		return nil, fmt.Errorf("decode parts for message %s: %w", msg.ID, err)
	}
	if err := json.Unmarshal(attachments, &msg.Attachments); err != nil {
		return nil, fmt.Errorf("decode attachments for message %s: %w", msg.ID, err)
	}

	return &msg, nil
}
