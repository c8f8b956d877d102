package service

import (
	"context"
	"errors"
	"testing"

	"parley/internal/domain"
	"parley/internal/domain/models"
)

func TestCreateStream(t *testing.T) {
	tests := []struct {
		name     string
		streamID string
		chatID   string
		wantErr  error
	}{
		{
			name:     "valid",
			streamID: "3f1d7a52-9f0c-4a7e-b7a9-2f6f3f1f9d10",
			chatID:   "chat-1",
		},
		{
			name:     "stream id must be a uuid",
			streamID: "not-a-uuid",
			chatID:   "chat-1",
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "missing chat id",
			streamID: "3f1d7a52-9f0c-4a7e-b7a9-2f6f3f1f9d10",
			wantErr:  domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *models.Stream
			streams := &MockStreamRepository{
				CreateFunc: func(ctx context.Context, stream *models.Stream) error {
					created = stream
					return nil
				},
			}
			svc := NewStreamService(streams, testLogger())

			err := svc.CreateStream(context.Background(), tt.streamID, tt.chatID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateStream() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateStream() unexpected error: %v", err)
			}
			if created == nil {
				t.Fatal("CreateStream() never reached the repository")
			}
			if created.CreatedAt.IsZero() {
				t.Error("stream.CreatedAt is zero")
			}
		})
	}
}

func TestListStreamIDs(t *testing.T) {
	streams := &MockStreamRepository{
		ListIDsByChatIDFunc: func(ctx context.Context, chatID string) ([]string, error) {
			return []string{"a", "b"}, nil
		},
	}
	svc := NewStreamService(streams, testLogger())

	ids, err := svc.ListStreamIDs(context.Background(), "chat-1")
	if err != nil {
		t.Fatalf("ListStreamIDs() unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ListStreamIDs() returned %d ids, want 2", len(ids))
	}
}
