package service

import (
	"context"
	"fmt"
	"log/slog"

	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
	"parley/internal/domain/services"
)

// streamService implements the StreamService interface. It only keeps
// the resumable-stream id ledger; the stream transport lives elsewhere.
type streamService struct {
	streams repositories.StreamRepository
	logger  *slog.Logger
}

// NewStreamService creates a new stream service
func NewStreamService(streams repositories.StreamRepository, logger *slog.Logger) services.StreamService {
	return &streamService{
		streams: streams,
		logger:  logger,
	}
}

// CreateStream records a stream id for a chat
func (s *streamService) CreateStream(ctx context.Context, streamID, chatID string) error {
	stream := models.NewStream(streamID, chatID)
	if err := stream.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.streams.Create(ctx, stream); err != nil {
		return err
	}

	s.logger.Debug("stream id created", "id", streamID, "chat_id", chatID)
	return nil
}

// ListStreamIDs returns a chat's stream ids, oldest first
func (s *streamService) ListStreamIDs(ctx context.Context, chatID string) ([]string, error) {
	if chatID == "" {
		return nil, fmt.Errorf("%w: chatId is required", domain.ErrValidation)
	}
	return s.streams.ListIDsByChatID(ctx, chatID)
}
