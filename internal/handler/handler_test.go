package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"parley/internal/domain/models"
	"parley/internal/domain/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockHistoryService is a function-field mock of services.HistoryService
type mockHistoryService struct {
	SaveChatFunc         func(ctx context.Context, req *services.SaveChatRequest) (*models.Chat, error)
	GetChatFunc          func(ctx context.Context, id string) (*models.Chat, error)
	ListChatsFunc        func(ctx context.Context, req *services.ListChatsRequest) (*models.ChatPage, error)
	DeleteChatFunc       func(ctx context.Context, id string) (*models.Chat, error)
	UpdateVisibilityFunc func(ctx context.Context, chatID string, visibility models.Visibility) error
}

func (m *mockHistoryService) SaveChat(ctx context.Context, req *services.SaveChatRequest) (*models.Chat, error) {
	if m.SaveChatFunc != nil {
		return m.SaveChatFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockHistoryService) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	if m.GetChatFunc != nil {
		return m.GetChatFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockHistoryService) ListChats(ctx context.Context, req *services.ListChatsRequest) (*models.ChatPage, error) {
	if m.ListChatsFunc != nil {
		return m.ListChatsFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockHistoryService) DeleteChat(ctx context.Context, id string) (*models.Chat, error) {
	if m.DeleteChatFunc != nil {
		return m.DeleteChatFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockHistoryService) UpdateVisibility(ctx context.Context, chatID string, visibility models.Visibility) error {
	if m.UpdateVisibilityFunc != nil {
		return m.UpdateVisibilityFunc(ctx, chatID, visibility)
	}
	return errors.New("not implemented")
}

// mockVoteService is a function-field mock of services.VoteService
type mockVoteService struct {
	VoteFunc      func(ctx context.Context, req *services.VoteRequest) error
	ListVotesFunc func(ctx context.Context, chatID string) ([]models.Vote, error)
}

func (m *mockVoteService) Vote(ctx context.Context, req *services.VoteRequest) error {
	if m.VoteFunc != nil {
		return m.VoteFunc(ctx, req)
	}
	return errors.New("not implemented")
}

func (m *mockVoteService) ListVotes(ctx context.Context, chatID string) ([]models.Vote, error) {
	if m.ListVotesFunc != nil {
		return m.ListVotesFunc(ctx, chatID)
	}
	return nil, errors.New("not implemented")
}

// mockConversationService is a function-field mock of services.ConversationService
type mockConversationService struct {
	SaveMessagesFunc           func(ctx context.Context, messages []models.Message) error
	ListMessagesFunc           func(ctx context.Context, chatID string) ([]models.Message, error)
	GetMessageFunc             func(ctx context.Context, id string) (*models.Message, error)
	DeleteTrailingMessagesFunc func(ctx context.Context, messageID string) error
}

func (m *mockConversationService) SaveMessages(ctx context.Context, messages []models.Message) error {
	if m.SaveMessagesFunc != nil {
		return m.SaveMessagesFunc(ctx, messages)
	}
	return errors.New("not implemented")
}

func (m *mockConversationService) ListMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, chatID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockConversationService) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockConversationService) DeleteTrailingMessages(ctx context.Context, messageID string) error {
	if m.DeleteTrailingMessagesFunc != nil {
		return m.DeleteTrailingMessagesFunc(ctx, messageID)
	}
	return errors.New("not implemented")
}

// mockStreamService is a function-field mock of services.StreamService
type mockStreamService struct {
	CreateStreamFunc  func(ctx context.Context, streamID, chatID string) error
	ListStreamIDsFunc func(ctx context.Context, chatID string) ([]string, error)
}

func (m *mockStreamService) CreateStream(ctx context.Context, streamID, chatID string) error {
	if m.CreateStreamFunc != nil {
		return m.CreateStreamFunc(ctx, streamID, chatID)
	}
	return errors.New("not implemented")
}

func (m *mockStreamService) ListStreamIDs(ctx context.Context, chatID string) ([]string, error) {
	if m.ListStreamIDsFunc != nil {
		return m.ListStreamIDsFunc(ctx, chatID)
	}
	return nil, errors.New("not implemented")
}

// mockArtifactService is a function-field mock of services.ArtifactService
type mockArtifactService struct {
	SaveDocumentFunc         func(ctx context.Context, req *services.SaveDocumentRequest) (*models.Document, error)
	GetLatestDocumentFunc    func(ctx context.Context, id string) (*models.Document, error)
	ListDocumentVersionsFunc func(ctx context.Context, id string) ([]models.Document, error)
	DeleteVersionsAfterFunc  func(ctx context.Context, id string, ts time.Time) ([]models.Document, error)
	SaveSuggestionsFunc      func(ctx context.Context, suggestions []models.Suggestion) error
	ListSuggestionsFunc      func(ctx context.Context, documentID string) ([]models.Suggestion, error)
}

func (m *mockArtifactService) SaveDocument(ctx context.Context, req *services.SaveDocumentRequest) (*models.Document, error) {
	if m.SaveDocumentFunc != nil {
		return m.SaveDocumentFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArtifactService) GetLatestDocument(ctx context.Context, id string) (*models.Document, error) {
	if m.GetLatestDocumentFunc != nil {
		return m.GetLatestDocumentFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArtifactService) ListDocumentVersions(ctx context.Context, id string) ([]models.Document, error) {
	if m.ListDocumentVersionsFunc != nil {
		return m.ListDocumentVersionsFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArtifactService) DeleteVersionsAfter(ctx context.Context, id string, ts time.Time) ([]models.Document, error) {
	if m.DeleteVersionsAfterFunc != nil {
		return m.DeleteVersionsAfterFunc(ctx, id, ts)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArtifactService) SaveSuggestions(ctx context.Context, suggestions []models.Suggestion) error {
	if m.SaveSuggestionsFunc != nil {
		return m.SaveSuggestionsFunc(ctx, suggestions)
	}
	return errors.New("not implemented")
}

func (m *mockArtifactService) ListSuggestions(ctx context.Context, documentID string) ([]models.Suggestion, error) {
	if m.ListSuggestionsFunc != nil {
		return m.ListSuggestionsFunc(ctx, documentID)
	}
	return nil, errors.New("not implemented")
}
