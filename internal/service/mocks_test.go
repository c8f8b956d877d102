package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"parley/internal/domain/models"
	"parley/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockTxManager runs the function directly; CallCount lets tests assert
// an operation actually went through the transaction wrapper.
type mockTxManager struct {
	CallCount int
	Err       error
}

func (m *mockTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.CallCount++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

// MockChatRepository is a function-field mock of repositories.ChatRepository
type MockChatRepository struct {
	CreateFunc           func(ctx context.Context, chat *models.Chat) error
	GetByIDFunc          func(ctx context.Context, id string) (*models.Chat, error)
	ListByUserIDFunc     func(ctx context.Context, userID string, opts repositories.ChatPageOptions) (*models.ChatPage, error)
	UpdateVisibilityFunc func(ctx context.Context, chatID string, visibility models.Visibility) error
	DeleteFunc           func(ctx context.Context, id string) (*models.Chat, error)
}

func (m *MockChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, chat)
	}
	return errors.New("not implemented")
}

func (m *MockChatRepository) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockChatRepository) ListByUserID(ctx context.Context, userID string, opts repositories.ChatPageOptions) (*models.ChatPage, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, opts)
	}
	return nil, errors.New("not implemented")
}

func (m *MockChatRepository) UpdateVisibility(ctx context.Context, chatID string, visibility models.Visibility) error {
	if m.UpdateVisibilityFunc != nil {
		return m.UpdateVisibilityFunc(ctx, chatID, visibility)
	}
	return errors.New("not implemented")
}

func (m *MockChatRepository) Delete(ctx context.Context, id string) (*models.Chat, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

// MockMessageRepository is a function-field mock of repositories.MessageRepository
type MockMessageRepository struct {
	CreateBatchFunc      func(ctx context.Context, messages []models.Message) error
	ListByChatIDFunc     func(ctx context.Context, chatID string) ([]models.Message, error)
	GetByIDFunc          func(ctx context.Context, id string) (*models.Message, error)
	IDsByChatIDAfterFunc func(ctx context.Context, chatID string, ts time.Time) ([]string, error)
	DeleteByIDsFunc      func(ctx context.Context, chatID string, ids []string) (int64, error)
	DeleteByChatIDFunc   func(ctx context.Context, chatID string) (int64, error)
}

func (m *MockMessageRepository) CreateBatch(ctx context.Context, messages []models.Message) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, messages)
	}
	return errors.New("not implemented")
}

func (m *MockMessageRepository) ListByChatID(ctx context.Context, chatID string) ([]models.Message, error) {
	if m.ListByChatIDFunc != nil {
		return m.ListByChatIDFunc(ctx, chatID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockMessageRepository) IDsByChatIDAfter(ctx context.Context, chatID string, ts time.Time) ([]string, error) {
	if m.IDsByChatIDAfterFunc != nil {
		return m.IDsByChatIDAfterFunc(ctx, chatID, ts)
	}
	return nil, errors.New("not implemented")
}

func (m *MockMessageRepository) DeleteByIDs(ctx context.Context, chatID string, ids []string) (int64, error) {
	if m.DeleteByIDsFunc != nil {
		return m.DeleteByIDsFunc(ctx, chatID, ids)
	}
	return 0, errors.New("not implemented")
}

func (m *MockMessageRepository) DeleteByChatID(ctx context.Context, chatID string) (int64, error) {
	if m.DeleteByChatIDFunc != nil {
		return m.DeleteByChatIDFunc(ctx, chatID)
	}
	return 0, errors.New("not implemented")
}

// MockVoteRepository is a function-field mock of repositories.VoteRepository
type MockVoteRepository struct {
	UpsertFunc             func(ctx context.Context, vote *models.Vote) error
	ListByChatIDFunc       func(ctx context.Context, chatID string) ([]models.Vote, error)
	DeleteByChatIDFunc     func(ctx context.Context, chatID string) (int64, error)
	DeleteByMessageIDsFunc func(ctx context.Context, chatID string, messageIDs []string) (int64, error)
}

func (m *MockVoteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, vote)
	}
	return errors.New("not implemented")
}

func (m *MockVoteRepository) ListByChatID(ctx context.Context, chatID string) ([]models.Vote, error) {
	if m.ListByChatIDFunc != nil {
		return m.ListByChatIDFunc(ctx, chatID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockVoteRepository) DeleteByChatID(ctx context.Context, chatID string) (int64, error) {
	if m.DeleteByChatIDFunc != nil {
		return m.DeleteByChatIDFunc(ctx, chatID)
	}
	return 0, errors.New("not implemented")
}

func (m *MockVoteRepository) DeleteByMessageIDs(ctx context.Context, chatID string, messageIDs []string) (int64, error) {
	if m.DeleteByMessageIDsFunc != nil {
		return m.DeleteByMessageIDsFunc(ctx, chatID, messageIDs)
	}
	return 0, errors.New("not implemented")
}

// MockStreamRepository is a function-field mock of repositories.StreamRepository
type MockStreamRepository struct {
	CreateFunc          func(ctx context.Context, stream *models.Stream) error
	ListIDsByChatIDFunc func(ctx context.Context, chatID string) ([]string, error)
	DeleteByChatIDFunc  func(ctx context.Context, chatID string) (int64, error)
}

func (m *MockStreamRepository) Create(ctx context.Context, stream *models.Stream) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, stream)
	}
	return errors.New("not implemented")
}

func (m *MockStreamRepository) ListIDsByChatID(ctx context.Context, chatID string) ([]string, error) {
	if m.ListIDsByChatIDFunc != nil {
		return m.ListIDsByChatIDFunc(ctx, chatID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockStreamRepository) DeleteByChatID(ctx context.Context, chatID string) (int64, error) {
	if m.DeleteByChatIDFunc != nil {
		return m.DeleteByChatIDFunc(ctx, chatID)
	}
	return 0, errors.New("not implemented")
}

// MockDocumentRepository is a function-field mock of repositories.DocumentRepository
type MockDocumentRepository struct {
	CreateFunc              func(ctx context.Context, doc *models.Document) error
	ListVersionsFunc        func(ctx context.Context, id string) ([]models.Document, error)
	GetLatestFunc           func(ctx context.Context, id string) (*models.Document, error)
	DeleteVersionsAfterFunc func(ctx context.Context, id string, ts time.Time) ([]models.Document, error)
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return errors.New("not implemented")
}

func (m *MockDocumentRepository) ListVersions(ctx context.Context, id string) ([]models.Document, error) {
	if m.ListVersionsFunc != nil {
		return m.ListVersionsFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDocumentRepository) GetLatest(ctx context.Context, id string) (*models.Document, error) {
	if m.GetLatestFunc != nil {
		return m.GetLatestFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDocumentRepository) DeleteVersionsAfter(ctx context.Context, id string, ts time.Time) ([]models.Document, error) {
	if m.DeleteVersionsAfterFunc != nil {
		return m.DeleteVersionsAfterFunc(ctx, id, ts)
	}
	return nil, errors.New("not implemented")
}

// MockSuggestionRepository is a function-field mock of repositories.SuggestionRepository
type MockSuggestionRepository struct {
	CreateBatchFunc           func(ctx context.Context, suggestions []models.Suggestion) error
	ListByDocumentIDFunc      func(ctx context.Context, documentID string) ([]models.Suggestion, error)
	DeleteByDocumentAfterFunc func(ctx context.Context, documentID string, ts time.Time) (int64, error)
}

func (m *MockSuggestionRepository) CreateBatch(ctx context.Context, suggestions []models.Suggestion) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, suggestions)
	}
	return errors.New("not implemented")
}

func (m *MockSuggestionRepository) ListByDocumentID(ctx context.Context, documentID string) ([]models.Suggestion, error) {
	if m.ListByDocumentIDFunc != nil {
		return m.ListByDocumentIDFunc(ctx, documentID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSuggestionRepository) DeleteByDocumentAfter(ctx context.Context, documentID string, ts time.Time) (int64, error) {
	if m.DeleteByDocumentAfterFunc != nil {
		return m.DeleteByDocumentAfterFunc(ctx, documentID, ts)
	}
	return 0, errors.New("not implemented")
}
