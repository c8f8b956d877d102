package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
)

// ChatRepository implements repositories.ChatRepository on PostgreSQL.
type ChatRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(config *RepositoryConfig) repositories.ChatRepository {
	return &ChatRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// Create inserts a new chat session
func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	query := `
		INSERT INTO chats (id, title, user_id, visibility, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		chat.ID,
		chat.Title,
		chat.UserID,
		chat.Visibility,
		chat.CreatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("chat %q already exists", chat.ID),
				ResourceType: "chat",
				ResourceID:   chat.ID,
			}
		}
		r.logger.Error("failed to save chat", "id", chat.ID, "error", err)
		return fmt.Errorf("save chat: %w", err)
	}

	return nil
}

// GetByID retrieves a chat by id
func (r *ChatRepository) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	query := `
		SELECT id, title, user_id, visibility, created_at
		FROM chats
		WHERE id = $1
	`

	var chat models.Chat
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.Title,
		&chat.UserID,
		&chat.Visibility,
		&chat.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
		}
		r.logger.Error("failed to get chat by id", "id", id, "error", err)
		return nil, fmt.Errorf("get chat: %w", err)
	}

	return &chat, nil
}

// ListByUserID pages through a user's chats newest-first. The cursor
// chat's createdAt bounds the page: startingAfter filters strictly older
// rows, endingBefore strictly newer ones. A cursor that does not resolve
// to an existing chat falls back to an unfiltered page.
func (r *ChatRepository) ListByUserID(ctx context.Context, userID string, opts repositories.ChatPageOptions) (*models.ChatPage, error) {
	executor := GetExecutor(ctx, r.pool)

	query := `
		SELECT id, title, user_id, visibility, created_at
		FROM chats
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if opts.StartingAfter != "" {
		if cursorAt, ok, err := r.cursorCreatedAt(ctx, opts.StartingAfter); err != nil {
			return nil, err
		} else if ok {
			query += ` AND created_at < $2`
			args = append(args, cursorAt)
		}
	} else if opts.EndingBefore != "" {
		if cursorAt, ok, err := r.cursorCreatedAt(ctx, opts.EndingBefore); err != nil {
			return nil, err
		} else if ok {
			query += ` AND created_at > $2`
			args = append(args, cursorAt)
		}
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, opts.Limit+1)

	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to get chats by user id", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	chats := []models.Chat{}
	for rows.Next() {
		var chat models.Chat
		err := rows.Scan(
			&chat.ID,
			&chat.Title,
			&chat.UserID,
			&chat.Visibility,
			&chat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	hasMore := len(chats) > opts.Limit
	if hasMore {
		chats = chats[:opts.Limit]
	}

	return &models.ChatPage{Chats: chats, HasMore: hasMore}, nil
}

// cursorCreatedAt resolves a cursor chat id to its createdAt. The second
// return reports whether the cursor exists; a missing cursor is not an
// error.
func (r *ChatRepository) cursorCreatedAt(ctx context.Context, chatID string) (time.Time, bool, error) {
	executor := GetExecutor(ctx, r.pool)

	var createdAt time.Time
	err := executor.QueryRow(ctx, `SELECT created_at FROM chats WHERE id = $1`, chatID).Scan(&createdAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("resolve cursor chat %s: %w", chatID, err)
	}

	return createdAt, true, nil
}

// UpdateVisibility flips a chat between public and private in place
func (r *ChatRepository) UpdateVisibility(ctx context.Context, chatID string, visibility models.Visibility) error {
	query := `UPDATE chats SET visibility = $1 WHERE id = $2`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, visibility, chatID)
	if err != nil {
		r.logger.Error("failed to update chat visibility", "id", chatID, "error", err)
		return fmt.Errorf("update chat visibility: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", chatID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the chat row and returns it
func (r *ChatRepository) Delete(ctx context.Context, id string) (*models.Chat, error) {
	query := `
		DELETE FROM chats
		WHERE id = $1
		RETURNING id, title, user_id, visibility, created_at
	`

	var chat models.Chat
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.Title,
		&chat.UserID,
		&chat.Visibility,
		&chat.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
		}
		r.logger.Error("failed to delete chat by id", "id", id, "error", err)
		return nil, fmt.Errorf("delete chat: %w", err)
	}

	return &chat, nil
}
