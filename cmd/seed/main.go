// Seed populates a development database with a sample conversation so
// the front end has something to render. Refuses to run against prod.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"parley/internal/config"
	"parley/internal/domain/models"
	"parley/internal/domain/services"
	"parley/internal/repository/postgres"
	"parley/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	clearData := flag.Bool("clear-data", false, "Delete the seeded chats before reseeding")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Environment == "prod" {
		log.Fatalf("BLOCKED: refusing to seed a production database")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{Pool: pool, Logger: logger}
	chatRepo := postgres.NewChatRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	voteRepo := postgres.NewVoteRepository(repoConfig)
	documentRepo := postgres.NewDocumentRepository(repoConfig)
	suggestionRepo := postgres.NewSuggestionRepository(repoConfig)
	streamRepo := postgres.NewStreamRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	history := service.NewHistoryService(chatRepo, messageRepo, voteRepo, streamRepo, txManager, logger)
	conversation := service.NewConversationService(messageRepo, voteRepo, txManager, logger)
	votes := service.NewVoteService(chatRepo, voteRepo, logger)
	artifacts := service.NewArtifactService(documentRepo, suggestionRepo, txManager, logger)
	streams := service.NewStreamService(streamRepo, logger)

	chatID := "00000000-0000-0000-0000-00000000c4a7"

	if *clearData {
		if _, err := history.DeleteChat(ctx, chatID); err != nil {
			logger.Warn("seed chat not present, nothing to clear", "error", err)
		}
	}

	chat, err := history.SaveChat(ctx, &services.SaveChatRequest{
		ID:         chatID,
		UserID:     "anonymous",
		Title:      "Getting started with Parley",
		Visibility: models.VisibilityPrivate,
	})
	if err != nil {
		log.Fatalf("Failed to seed chat: %v", err)
	}

	now := time.Now().UTC()
	userMsgID := uuid.New().String()
	assistantMsgID := uuid.New().String()

	err = conversation.SaveMessages(ctx, []models.Message{
		{
			ID:        userMsgID,
			ChatID:    chat.ID,
			Role:      "user",
			Parts:     models.Parts{models.TextPart{Text: "What can you do?"}},
			CreatedAt: now,
		},
		{
			ID:     assistantMsgID,
			ChatID: chat.ID,
			Role:   "assistant",
			Parts: models.Parts{
				models.ReasoningPart{Text: "The user wants a capability overview."},
				models.TextPart{Text: "I can chat, edit documents and suggest improvements."},
			},
			CreatedAt: now.Add(time.Second),
		},
	})
	if err != nil {
		log.Fatalf("Failed to seed messages: %v", err)
	}

	err = votes.Vote(ctx, &services.VoteRequest{
		ChatID:    chat.ID,
		MessageID: assistantMsgID,
		Type:      "up",
	})
	if err != nil {
		log.Fatalf("Failed to seed vote: %v", err)
	}

	doc, err := artifacts.SaveDocument(ctx, &services.SaveDocumentRequest{
		ID:      uuid.New().String(),
		Title:   "Welcome note",
		Content: "Hello from the seed tool.",
		Kind:    models.DocumentKindText,
		UserID:  "anonymous",
	})
	if err != nil {
		log.Fatalf("Failed to seed document: %v", err)
	}

	err = artifacts.SaveSuggestions(ctx, []models.Suggestion{
		{
			ID:                uuid.New().String(),
			DocumentID:        doc.ID,
			DocumentCreatedAt: doc.CreatedAt,
			OriginalText:      "Hello from the seed tool.",
			SuggestedText:     "Hello from the seeding tool.",
			UserID:            "anonymous",
		},
	})
	if err != nil {
		log.Fatalf("Failed to seed suggestions: %v", err)
	}

	if err := streams.CreateStream(ctx, uuid.New().String(), chat.ID); err != nil {
		log.Fatalf("Failed to seed stream id: %v", err)
	}

	logger.Info("seed complete", "chat_id", chat.ID, "document_id", doc.ID)
}
