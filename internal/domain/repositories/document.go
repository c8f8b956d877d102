package repositories

import (
	"context"
	"time"

	"parley/internal/domain/models"
)

// DocumentRepository persists document versions.
type DocumentRepository interface {
	// Create appends a new version row; prior versions sharing the id are
	// untouched. A duplicate (id, createdAt) pair yields a ConflictError.
	Create(ctx context.Context, doc *models.Document) error

	// ListVersions returns all versions of a document, oldest first.
	ListVersions(ctx context.Context, id string) ([]models.Document, error)

	// GetLatest returns the newest version, or an error wrapping
	// domain.ErrNotFound.
	GetLatest(ctx context.Context, id string) (*models.Document, error)

	// DeleteVersionsAfter removes versions with createdAt strictly greater
	// than ts and returns the deleted rows. The boundary is exclusive,
	// unlike trailing message deletion.
	DeleteVersionsAfter(ctx context.Context, id string, ts time.Time) ([]models.Document, error)
}

// SuggestionRepository persists edit suggestions.
type SuggestionRepository interface {
	// CreateBatch bulk-inserts suggestions.
	CreateBatch(ctx context.Context, suggestions []models.Suggestion) error

	// ListByDocumentID returns every suggestion targeting any version of
	// the document.
	ListByDocumentID(ctx context.Context, documentID string) ([]models.Suggestion, error)

	// DeleteByDocumentAfter removes suggestions whose target version has
	// documentCreatedAt strictly greater than ts.
	DeleteByDocumentAfter(ctx context.Context, documentID string, ts time.Time) (int64, error)
}
