package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
	"parley/internal/domain/services"
)

// artifactService implements the ArtifactService interface.
// Documents are append-only version rows; deleting "after a timestamp"
// trims trailing versions and their suggestions.
type artifactService struct {
	documents   repositories.DocumentRepository
	suggestions repositories.SuggestionRepository
	tx          repositories.TransactionManager
	logger      *slog.Logger
}

// NewArtifactService creates a new artifact service
func NewArtifactService(
	documents repositories.DocumentRepository,
	suggestions repositories.SuggestionRepository,
	tx repositories.TransactionManager,
	logger *slog.Logger,
) services.ArtifactService {
	return &artifactService{
		documents:   documents,
		suggestions: suggestions,
		tx:          tx,
		logger:      logger,
	}
}

// SaveDocument validates and appends a new document version
func (s *artifactService) SaveDocument(ctx context.Context, req *services.SaveDocumentRequest) (*models.Document, error) {
	doc := models.NewDocument(req.ID, req.Title, req.Content, req.UserID, req.Kind)
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document version saved",
		"id", doc.ID,
		"kind", doc.Kind,
		"created_at", doc.CreatedAt,
	)

	return doc, nil
}

// GetLatestDocument returns the newest version of a document
func (s *artifactService) GetLatestDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.documents.GetLatest(ctx, id)
}

// ListDocumentVersions returns every version, oldest first
func (s *artifactService) ListDocumentVersions(ctx context.Context, id string) ([]models.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	return s.documents.ListVersions(ctx, id)
}

// DeleteVersionsAfter removes versions strictly newer than ts and their
// suggestions. Suggestions go first, inside the same transaction, so a
// partial failure cannot leave them pointing at deleted versions. The
// boundary is exclusive (>), unlike trailing message deletion.
func (s *artifactService) DeleteVersionsAfter(ctx context.Context, id string, ts time.Time) ([]models.Document, error) {
	var deleted []models.Document

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := s.suggestions.DeleteByDocumentAfter(txCtx, id, ts); err != nil {
			return err
		}

		docs, err := s.documents.DeleteVersionsAfter(txCtx, id, ts)
		if err != nil {
			return err
		}
		deleted = docs
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("document versions deleted",
		"id", id,
		"after", ts,
		"count", len(deleted),
	)

	return deleted, nil
}

// SaveSuggestions validates and bulk-inserts suggestions
func (s *artifactService) SaveSuggestions(ctx context.Context, suggestions []models.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range suggestions {
		if suggestions[i].CreatedAt.IsZero() {
			suggestions[i].CreatedAt = now
		}
		if err := suggestions[i].Validate(); err != nil {
			return fmt.Errorf("%w: suggestion %d: %v", domain.ErrValidation, i, err)
		}
	}

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		return s.suggestions.CreateBatch(txCtx, suggestions)
	})
	if err != nil {
		return err
	}

	s.logger.Info("suggestions saved",
		"document_id", suggestions[0].DocumentID,
		"count", len(suggestions),
	)
	return nil
}

// ListSuggestions returns suggestions for any version of a document
func (s *artifactService) ListSuggestions(ctx context.Context, documentID string) ([]models.Suggestion, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: documentId is required", domain.ErrValidation)
	}
	return s.suggestions.ListByDocumentID(ctx, documentID)
}
