package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
	"parley/internal/domain/services"
)

// voteService implements the VoteService interface.
type voteService struct {
	chats  repositories.ChatRepository
	votes  repositories.VoteRepository
	logger *slog.Logger
}

// NewVoteService creates a new vote service
func NewVoteService(
	chats repositories.ChatRepository,
	votes repositories.VoteRepository,
	logger *slog.Logger,
) services.VoteService {
	return &voteService{
		chats:  chats,
		votes:  votes,
		logger: logger,
	}
}

// Vote records an up/down vote, overriding any previous vote for the
// same (chat, message) pair via a single atomic upsert.
func (s *voteService) Vote(ctx context.Context, req *services.VoteRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.ChatID, validation.Required),
		validation.Field(&req.MessageID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("up", "down")),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// The chat must exist; ownership is not checked since identity is
	// optional.
	if _, err := s.chats.GetByID(ctx, req.ChatID); err != nil {
		return err
	}

	vote := &models.Vote{
		ChatID:    req.ChatID,
		MessageID: req.MessageID,
		IsUpvoted: req.Type == "up",
	}
	if err := s.votes.Upsert(ctx, vote); err != nil {
		return err
	}

	s.logger.Info("message voted",
		"chat_id", req.ChatID,
		"message_id", req.MessageID,
		"type", req.Type,
	)
	return nil
}

// ListVotes returns every vote in a chat
func (s *voteService) ListVotes(ctx context.Context, chatID string) ([]models.Vote, error) {
	if chatID == "" {
		return nil, fmt.Errorf("%w: chatId is required", domain.ErrValidation)
	}

	if _, err := s.chats.GetByID(ctx, chatID); err != nil {
		return nil, err
	}

	return s.votes.ListByChatID(ctx, chatID)
}
