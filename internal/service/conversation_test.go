package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parley/internal/domain"
	"parley/internal/domain/models"
)

func TestSaveMessages(t *testing.T) {
	validMessage := func(id string) models.Message {
		return models.Message{
			ID:     id,
			ChatID: "chat-1",
			Role:   "user",
			Parts:  models.Parts{models.TextPart{Text: "hi"}},
		}
	}

	t.Run("fills missing createdAt", func(t *testing.T) {
		var saved []models.Message
		messages := &MockMessageRepository{
			CreateBatchFunc: func(ctx context.Context, msgs []models.Message) error {
				saved = msgs
				return nil
			},
		}
		svc := NewConversationService(messages, &MockVoteRepository{}, &mockTxManager{}, testLogger())

		if err := svc.SaveMessages(context.Background(), []models.Message{validMessage("m1")}); err != nil {
			t.Fatalf("SaveMessages() unexpected error: %v", err)
		}
		if len(saved) != 1 || saved[0].CreatedAt.IsZero() {
			t.Fatalf("SaveMessages() did not default createdAt: %+v", saved)
		}
	})

	t.Run("rejects invalid message", func(t *testing.T) {
		svc := NewConversationService(&MockMessageRepository{}, &MockVoteRepository{}, &mockTxManager{}, testLogger())

		bad := validMessage("m1")
		bad.Role = ""
		err := svc.SaveMessages(context.Background(), []models.Message{bad})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("SaveMessages() error = %v, want ErrValidation", err)
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		tx := &mockTxManager{}
		svc := NewConversationService(&MockMessageRepository{}, &MockVoteRepository{}, tx, testLogger())

		if err := svc.SaveMessages(context.Background(), nil); err != nil {
			t.Fatalf("SaveMessages() unexpected error: %v", err)
		}
		if tx.CallCount != 0 {
			t.Error("SaveMessages() opened a transaction for an empty batch")
		}
	})
}

func TestDeleteTrailingMessages(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ref := &models.Message{
		ID:        "m2",
		ChatID:    "chat-1",
		Role:      "assistant",
		Parts:     models.Parts{models.TextPart{Text: "answer"}},
		CreatedAt: base,
	}

	t.Run("deletes votes before messages from the reference timestamp", func(t *testing.T) {
		var calls []string
		var gotTs time.Time
		var votedIDs, deletedIDs []string

		messages := &MockMessageRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*models.Message, error) {
				return ref, nil
			},
			IDsByChatIDAfterFunc: func(ctx context.Context, chatID string, ts time.Time) ([]string, error) {
				gotTs = ts
				return []string{"m2", "m3"}, nil
			},
			DeleteByIDsFunc: func(ctx context.Context, chatID string, ids []string) (int64, error) {
				calls = append(calls, "messages")
				deletedIDs = ids
				return int64(len(ids)), nil
			},
		}
		votes := &MockVoteRepository{
			DeleteByMessageIDsFunc: func(ctx context.Context, chatID string, messageIDs []string) (int64, error) {
				calls = append(calls, "votes")
				votedIDs = messageIDs
				return 1, nil
			},
		}
		svc := NewConversationService(messages, votes, &mockTxManager{}, testLogger())

		if err := svc.DeleteTrailingMessages(context.Background(), "m2"); err != nil {
			t.Fatalf("DeleteTrailingMessages() unexpected error: %v", err)
		}

		// The reference message itself is part of the deleted range.
		if !gotTs.Equal(base) {
			t.Errorf("boundary timestamp = %v, want %v", gotTs, base)
		}
		if len(calls) != 2 || calls[0] != "votes" || calls[1] != "messages" {
			t.Errorf("call order = %v, want [votes messages]", calls)
		}
		if len(votedIDs) != 2 || len(deletedIDs) != 2 {
			t.Errorf("affected ids: votes=%v messages=%v, want both [m2 m3]", votedIDs, deletedIDs)
		}
	})

	t.Run("missing message is a no-op", func(t *testing.T) {
		tx := &mockTxManager{}
		messages := &MockMessageRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*models.Message, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := NewConversationService(messages, &MockVoteRepository{}, tx, testLogger())

		if err := svc.DeleteTrailingMessages(context.Background(), "gone"); err != nil {
			t.Fatalf("DeleteTrailingMessages() on missing message: %v", err)
		}
		if tx.CallCount != 0 {
			t.Error("DeleteTrailingMessages() opened a transaction for a missing message")
		}
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		dbErr := errors.New("connection lost")
		messages := &MockMessageRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*models.Message, error) {
				return nil, dbErr
			},
		}
		svc := NewConversationService(messages, &MockVoteRepository{}, &mockTxManager{}, testLogger())

		if err := svc.DeleteTrailingMessages(context.Background(), "m2"); !errors.Is(err, dbErr) {
			t.Fatalf("DeleteTrailingMessages() error = %v, want %v", err, dbErr)
		}
	})

	t.Run("empty trailing range skips deletes", func(t *testing.T) {
		messages := &MockMessageRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*models.Message, error) {
				return ref, nil
			},
			IDsByChatIDAfterFunc: func(ctx context.Context, chatID string, ts time.Time) ([]string, error) {
				return nil, nil
			},
		}
		// MockVoteRepository errors if its delete is reached.
		svc := NewConversationService(messages, &MockVoteRepository{}, &mockTxManager{}, testLogger())

		if err := svc.DeleteTrailingMessages(context.Background(), "m2"); err != nil {
			t.Fatalf("DeleteTrailingMessages() unexpected error: %v", err)
		}
	})
}

func TestListMessagesRequiresChatID(t *testing.T) {
	svc := NewConversationService(&MockMessageRepository{}, &MockVoteRepository{}, &mockTxManager{}, testLogger())

	if _, err := svc.ListMessages(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("ListMessages(\"\") error = %v, want ErrValidation", err)
	}
}
