package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
	"parley/internal/domain/services"
)

// conversationService implements the ConversationService interface.
type conversationService struct {
	messages repositories.MessageRepository
	votes    repositories.VoteRepository
	tx       repositories.TransactionManager
	logger   *slog.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(
	messages repositories.MessageRepository,
	votes repositories.VoteRepository,
	tx repositories.TransactionManager,
	logger *slog.Logger,
) services.ConversationService {
	return &conversationService{
		messages: messages,
		votes:    votes,
		tx:       tx,
		logger:   logger,
	}
}

// SaveMessages validates and bulk-inserts messages. The batch runs in a
// transaction so a rejected row fails the whole insert.
func (s *conversationService) SaveMessages(ctx context.Context, messages []models.Message) error {
	if len(messages) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range messages {
		if messages[i].CreatedAt.IsZero() {
			messages[i].CreatedAt = now
		}
		if err := messages[i].Validate(); err != nil {
			return fmt.Errorf("%w: message %d: %v", domain.ErrValidation, i, err)
		}
	}

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		return s.messages.CreateBatch(txCtx, messages)
	})
	if err != nil {
		return err
	}

	s.logger.Info("messages saved", "chat_id", messages[0].ChatID, "count", len(messages))
	return nil
}

// ListMessages returns a chat's messages, oldest first
func (s *conversationService) ListMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	if chatID == "" {
		return nil, fmt.Errorf("%w: chatId is required", domain.ErrValidation)
	}
	return s.messages.ListByChatID(ctx, chatID)
}

// GetMessage retrieves a single message by id
func (s *conversationService) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	return s.messages.GetByID(ctx, id)
}

// DeleteTrailingMessages removes the identified message and everything
// after it in its chat, votes included. The createdAt boundary is
// inclusive (>=), so the reference message itself goes too - this
// deliberately differs from the exclusive boundary used for document
// versions. A message that no longer exists is a no-op.
func (s *conversationService) DeleteTrailingMessages(ctx context.Context, messageID string) error {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		ids, err := s.messages.IDsByChatIDAfter(txCtx, msg.ChatID, msg.CreatedAt)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		// Votes go first so the message rows never outlive this step
		// without their dependents accounted for.
		if _, err := s.votes.DeleteByMessageIDs(txCtx, msg.ChatID, ids); err != nil {
			return err
		}

		deleted, err := s.messages.DeleteByIDs(txCtx, msg.ChatID, ids)
		if err != nil {
			return err
		}

		s.logger.Info("trailing messages deleted",
			"chat_id", msg.ChatID,
			"from", msg.CreatedAt,
			"count", deleted,
		)
		return nil
	})
}
