package services

import (
	"context"
	"time"

	"parley/internal/domain/models"
)

// ArtifactService defines the business logic for versioned documents and
// their suggestions.
type ArtifactService interface {
	// SaveDocument validates and appends a new document version.
	SaveDocument(ctx context.Context, req *SaveDocumentRequest) (*models.Document, error)

	// GetLatestDocument returns the newest version of a document.
	GetLatestDocument(ctx context.Context, id string) (*models.Document, error)

	// ListDocumentVersions returns every version, oldest first.
	ListDocumentVersions(ctx context.Context, id string) ([]models.Document, error)

	// DeleteVersionsAfter removes versions newer than ts (exclusive) and
	// their suggestions in one transaction, returning the deleted versions.
	DeleteVersionsAfter(ctx context.Context, id string, ts time.Time) ([]models.Document, error)

	// SaveSuggestions validates and bulk-inserts suggestions.
	SaveSuggestions(ctx context.Context, suggestions []models.Suggestion) error

	// ListSuggestions returns suggestions for any version of a document.
	ListSuggestions(ctx context.Context, documentID string) ([]models.Suggestion, error)
}

// SaveDocumentRequest is the DTO for appending a document version.
type SaveDocumentRequest struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Content string              `json:"content"`
	Kind    models.DocumentKind `json:"kind"`
	UserID  string              `json:"userId"`
}

// StreamService defines the business logic for resumable-stream
// identifier bookkeeping.
type StreamService interface {
	// CreateStream records a stream id for a chat.
	CreateStream(ctx context.Context, streamID, chatID string) error

	// ListStreamIDs returns a chat's stream ids, oldest first.
	ListStreamIDs(ctx context.Context, chatID string) ([]string, error)
}
