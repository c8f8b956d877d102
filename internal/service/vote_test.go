package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"parley/internal/domain"
	"parley/internal/domain/models"
	"parley/internal/domain/services"
)

func TestVote(t *testing.T) {
	existingChat := &models.Chat{ID: "chat-1", UserID: "user-1", Title: "t", Visibility: models.VisibilityPrivate}

	tests := []struct {
		name         string
		req          *services.VoteRequest
		chatErr      error
		wantErr      error
		wantUpvoted  bool
		wantUpserted bool
	}{
		{
			name:         "upvote",
			req:          &services.VoteRequest{ChatID: "chat-1", MessageID: "m1", Type: "up"},
			wantUpvoted:  true,
			wantUpserted: true,
		},
		{
			name:         "downvote",
			req:          &services.VoteRequest{ChatID: "chat-1", MessageID: "m1", Type: "down"},
			wantUpvoted:  false,
			wantUpserted: true,
		},
		{
			name:    "invalid type",
			req:     &services.VoteRequest{ChatID: "chat-1", MessageID: "m1", Type: "sideways"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing message id",
			req:     &services.VoteRequest{ChatID: "chat-1", Type: "up"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing chat id",
			req:     &services.VoteRequest{MessageID: "m1", Type: "up"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "chat absent",
			req:     &services.VoteRequest{ChatID: "gone", MessageID: "m1", Type: "up"},
			chatErr: fmt.Errorf("chat gone: %w", domain.ErrNotFound),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var upserted *models.Vote
			chats := &MockChatRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*models.Chat, error) {
					if tt.chatErr != nil {
						return nil, tt.chatErr
					}
					return existingChat, nil
				},
			}
			votes := &MockVoteRepository{
				UpsertFunc: func(ctx context.Context, vote *models.Vote) error {
					upserted = vote
					return nil
				},
			}
			svc := NewVoteService(chats, votes, testLogger())

			err := svc.Vote(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Vote() error = %v, want %v", err, tt.wantErr)
				}
				if upserted != nil {
					t.Error("Vote() reached the repository despite the error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Vote() unexpected error: %v", err)
			}
			if !tt.wantUpserted {
				return
			}
			if upserted == nil {
				t.Fatal("Vote() never reached the repository")
			}
			if upserted.IsUpvoted != tt.wantUpvoted {
				t.Errorf("vote.IsUpvoted = %v, want %v", upserted.IsUpvoted, tt.wantUpvoted)
			}
		})
	}
}

func TestListVotesChatMustExist(t *testing.T) {
	chats := &MockChatRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Chat, error) {
			return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
		},
	}
	svc := NewVoteService(chats, &MockVoteRepository{}, testLogger())

	_, err := svc.ListVotes(context.Background(), "gone")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ListVotes() error = %v, want ErrNotFound", err)
	}
}

func TestListVotes(t *testing.T) {
	chats := &MockChatRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Chat, error) {
			return &models.Chat{ID: id, UserID: "user-1", Title: "t", Visibility: models.VisibilityPrivate}, nil
		},
	}
	votes := &MockVoteRepository{
		ListByChatIDFunc: func(ctx context.Context, chatID string) ([]models.Vote, error) {
			return []models.Vote{
				{ChatID: chatID, MessageID: "m1", IsUpvoted: true},
				{ChatID: chatID, MessageID: "m2", IsUpvoted: false},
			}, nil
		},
	}
	svc := NewVoteService(chats, votes, testLogger())

	got, err := svc.ListVotes(context.Background(), "chat-1")
	if err != nil {
		t.Fatalf("ListVotes() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListVotes() returned %d votes, want 2", len(got))
	}
}
