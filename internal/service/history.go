package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
	"parley/internal/domain/services"
)

const defaultHistoryLimit = 10

// historyService implements the HistoryService interface.
// Owns chat sessions and the cascading chat delete.
type historyService struct {
	chats    repositories.ChatRepository
	messages repositories.MessageRepository
	votes    repositories.VoteRepository
	streams  repositories.StreamRepository
	tx       repositories.TransactionManager
	logger   *slog.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(
	chats repositories.ChatRepository,
	messages repositories.MessageRepository,
	votes repositories.VoteRepository,
	streams repositories.StreamRepository,
	tx repositories.TransactionManager,
	logger *slog.Logger,
) services.HistoryService {
	return &historyService{
		chats:    chats,
		messages: messages,
		votes:    votes,
		streams:  streams,
		tx:       tx,
		logger:   logger,
	}
}

// SaveChat validates and inserts a new chat session
func (s *historyService) SaveChat(ctx context.Context, req *services.SaveChatRequest) (*models.Chat, error) {
	chat := models.NewChat(req.ID, req.UserID, strings.TrimSpace(req.Title), req.Visibility)
	if err := chat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.chats.Create(ctx, chat); err != nil {
		return nil, err
	}

	s.logger.Info("chat created",
		"id", chat.ID,
		"user_id", chat.UserID,
		"visibility", chat.Visibility,
	)

	return chat, nil
}

// GetChat retrieves a chat by id
func (s *historyService) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	return s.chats.GetByID(ctx, id)
}

// ListChats pages through a user's chats, newest first
func (s *historyService) ListChats(ctx context.Context, req *services.ListChatsRequest) (*models.ChatPage, error) {
	if req.StartingAfter != "" && req.EndingBefore != "" {
		return nil, fmt.Errorf("%w: only one of starting_after or ending_before can be provided", domain.ErrValidation)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	return s.chats.ListByUserID(ctx, req.UserID, repositories.ChatPageOptions{
		Limit:         limit,
		StartingAfter: req.StartingAfter,
		EndingBefore:  req.EndingBefore,
	})
}

// DeleteChat removes a chat and everything hanging off it. The cascade
// (votes, messages, streams, then the chat row) runs in one transaction
// so a mid-cascade failure rolls back instead of stranding dependents.
func (s *historyService) DeleteChat(ctx context.Context, id string) (*models.Chat, error) {
	var deleted *models.Chat

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := s.votes.DeleteByChatID(txCtx, id); err != nil {
			return err
		}
		if _, err := s.messages.DeleteByChatID(txCtx, id); err != nil {
			return err
		}
		if _, err := s.streams.DeleteByChatID(txCtx, id); err != nil {
			return err
		}

		chat, err := s.chats.Delete(txCtx, id)
		if err != nil {
			return err
		}
		deleted = chat
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("chat deleted", "id", id, "user_id", deleted.UserID)

	return deleted, nil
}

// UpdateVisibility flips a chat between public and private
func (s *historyService) UpdateVisibility(ctx context.Context, chatID string, visibility models.Visibility) error {
	if err := validation.Validate(visibility,
		validation.Required,
		validation.In(models.VisibilityPublic, models.VisibilityPrivate),
	); err != nil {
		return fmt.Errorf("%w: visibility: %v", domain.ErrValidation, err)
	}
	if chatID == "" {
		return fmt.Errorf("%w: chatId is required", domain.ErrValidation)
	}

	if err := s.chats.UpdateVisibility(ctx, chatID, visibility); err != nil {
		return err
	}

	s.logger.Info("chat visibility updated", "id", chatID, "visibility", visibility)
	return nil
}
