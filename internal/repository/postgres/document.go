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

// DocumentRepository implements repositories.DocumentRepository on
// PostgreSQL. Rows are append-only document versions keyed by
// (id, created_at).
type DocumentRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &DocumentRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// Create appends a new document version
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (id, created_at, title, content, kind, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		doc.ID,
		doc.CreatedAt,
		doc.Title,
		doc.Content,
		doc.Kind,
		doc.UserID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("document version (%s, %s) already exists", doc.ID, doc.CreatedAt.Format(time.RFC3339Nano)),
				ResourceType: "document",
				ResourceID:   doc.ID,
			}
		}
		r.logger.Error("failed to save document", "id", doc.ID, "error", err)
		return fmt.Errorf("save document: %w", err)
	}

	return nil
}

// ListVersions returns all versions of a document, oldest first
func (r *DocumentRepository) ListVersions(ctx context.Context, id string) ([]models.Document, error) {
	query := `
		SELECT id, created_at, title, content, kind, user_id
		FROM documents
		WHERE id = $1
		ORDER BY created_at ASC
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to get documents by id", "id", id, "error", err)
		return nil, fmt.Errorf("list document versions: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}

// GetLatest returns the newest version of a document
func (r *DocumentRepository) GetLatest(ctx context.Context, id string) (*models.Document, error) {
	query := `
		SELECT id, created_at, title, content, kind, user_id
		FROM documents
		WHERE id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	executor := GetExecutor(ctx, r.pool)
	doc, err := scanDocument(executor.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		r.logger.Error("failed to get document by id", "id", id, "error", err)
		return nil, fmt.Errorf("get document: %w", err)
	}

	return doc, nil
}

// DeleteVersionsAfter removes versions strictly newer than ts and
// returns the deleted rows. The exclusive boundary keeps the version at
// ts itself.
func (r *DocumentRepository) DeleteVersionsAfter(ctx context.Context, id string, ts time.Time) ([]models.Document, error) {
	query := `
		DELETE FROM documents
		WHERE id = $1 AND created_at > $2
		RETURNING id, created_at, title, content, kind, user_id
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, id, ts)
	if err != nil {
		r.logger.Error("failed to delete documents by id after timestamp", "id", id, "error", err)
		return nil, fmt.Errorf("delete document versions: %w", err)
	}
	defer rows.Close()

	deleted := []models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan deleted document: %w", err)
		}
		deleted = append(deleted, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deleted documents: %w", err)
	}

	return deleted, nil
}

func scanDocument(scan func(dest ...any) error) (*models.Document, error) {
	var (
		doc     models.Document
		content *string
	)

	err := scan(
		&doc.ID,
		&doc.CreatedAt,
		&doc.Title,
		&content,
		&doc.Kind,
		&doc.UserID,
	)
	if err != nil {
		return nil, err
	}

	if content != nil {
		doc.Content = *content
	}

	return &doc, nil
}
