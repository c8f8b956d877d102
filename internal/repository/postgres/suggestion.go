package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
)

// SuggestionRepository implements repositories.SuggestionRepository on
// PostgreSQL.
type SuggestionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewSuggestionRepository creates a new SuggestionRepository
func NewSuggestionRepository(config *RepositoryConfig) repositories.SuggestionRepository {
	return &SuggestionRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// CreateBatch bulk-inserts suggestions in a single pgx batch
func (r *SuggestionRepository) CreateBatch(ctx context.Context, suggestions []models.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	query := `
		INSERT INTO suggestions
			(id, document_id, document_created_at, original_text, suggested_text, description, is_resolved, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for i := range suggestions {
		s := &suggestions[i]
		batch.Queue(query,
			s.ID,
			s.DocumentID,
			s.DocumentCreatedAt,
			s.OriginalText,
			s.SuggestedText,
			s.Description,
			s.IsResolved,
			s.UserID,
			s.CreatedAt,
		)
	}

	executor := GetExecutor(ctx, r.pool)
	results := executor.SendBatch(ctx, batch)
	defer results.Close()

	for i := range suggestions {
		if _, err := results.Exec(); err != nil {
			if IsPgDuplicateError(err) {
				return &domain.ConflictError{
					Message:      fmt.Sprintf("suggestion %q already exists", suggestions[i].ID),
					ResourceType: "suggestion",
					ResourceID:   suggestions[i].ID,
				}
			}
			r.logger.Error("failed to save suggestions", "document_id", suggestions[i].DocumentID, "error", err)
			return fmt.Errorf("save suggestions: %w", err)
		}
	}

	return nil
}

// ListByDocumentID returns suggestions targeting any version of the
// document
func (r *SuggestionRepository) ListByDocumentID(ctx context.Context, documentID string) ([]models.Suggestion, error) {
	query := `
		SELECT id, document_id, document_created_at, original_text, suggested_text, description, is_resolved, user_id, created_at
		FROM suggestions
		WHERE document_id = $1
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, documentID)
	if err != nil {
		r.logger.Error("failed to get suggestions by document id", "document_id", documentID, "error", err)
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := []models.Suggestion{}
	for rows.Next() {
		var (
			s           models.Suggestion
			description *string
		)
		err := rows.Scan(
			&s.ID,
			&s.DocumentID,
			&s.DocumentCreatedAt,
			&s.OriginalText,
			&s.SuggestedText,
			&description,
			&s.IsResolved,
			&s.UserID,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		if description != nil {
			s.Description = *description
		}
		suggestions = append(suggestions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}

	return suggestions, nil
}

// DeleteByDocumentAfter removes suggestions whose target version is
// strictly newer than ts. Runs before the version delete so a mid-cascade
// failure cannot orphan suggestions.
func (r *SuggestionRepository) DeleteByDocumentAfter(ctx context.Context, documentID string, ts time.Time) (int64, error) {
	query := `
		DELETE FROM suggestions
		WHERE document_id = $1 AND document_created_at > $2
	`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, documentID, ts)
	if err != nil {
		r.logger.Error("failed to delete suggestions", "document_id", documentID, "error", err)
		return 0, fmt.Errorf("delete suggestions: %w", err)
	}

	return result.RowsAffected(), nil
}
