package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"parley/internal/auth"
	"parley/internal/blob"
	"parley/internal/config"
	"parley/internal/handler"
	"parley/internal/middleware"
	"parley/internal/repository/postgres"
	"parley/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logWriter io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logWriter = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Optional bearer-token identity. Routes stay open; a verifier only
	// resolves the user id when the front end sends a token.
	var verifier auth.TokenVerifier
	if cfg.JWKSURL != "" {
		v, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
		defer v.Close()
		verifier = v
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Apply schema migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("migrations applied")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	chatRepo := postgres.NewChatRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	voteRepo := postgres.NewVoteRepository(repoConfig)
	documentRepo := postgres.NewDocumentRepository(repoConfig)
	suggestionRepo := postgres.NewSuggestionRepository(repoConfig)
	streamRepo := postgres.NewStreamRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Create services
	historyService := service.NewHistoryService(chatRepo, messageRepo, voteRepo, streamRepo, txManager, logger)
	conversationService := service.NewConversationService(messageRepo, voteRepo, txManager, logger)
	voteService := service.NewVoteService(chatRepo, voteRepo, logger)
	artifactService := service.NewArtifactService(documentRepo, suggestionRepo, txManager, logger)
	streamService := service.NewStreamService(streamRepo, logger)

	// Blob store and acceptance policy for uploads
	blobStore, err := blob.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("Failed to create blob store: %v", err)
	}
	uploadPolicy, err := blob.LoadUploadPolicy()
	if err != nil {
		log.Fatalf("Failed to load upload policy: %v", err)
	}

	// Create handlers
	historyHandler := handler.NewHistoryHandler(historyService, logger)
	chatHandler := handler.NewChatHandler(historyService, conversationService, streamService, logger)
	voteHandler := handler.NewVoteHandler(voteService, logger)
	documentHandler := handler.NewDocumentHandler(artifactService, logger)
	suggestionHandler := handler.NewSuggestionHandler(artifactService, logger)
	uploadHandler := handler.NewUploadHandler(blobStore, uploadPolicy, logger)
	healthHandler := handler.NewHealthHandler(pool, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check and metrics
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// History routes
	mux.HandleFunc("GET /api/history", historyHandler.ListHistory)

	// Chat routes
	mux.HandleFunc("POST /api/chat", chatHandler.CreateChat)
	mux.HandleFunc("DELETE /api/chat", chatHandler.DeleteChat)
	mux.HandleFunc("GET /api/chat/{id}/messages", chatHandler.ListMessages)
	mux.HandleFunc("GET /api/chat/{id}/streams", chatHandler.ListStreams)
	mux.HandleFunc("PATCH /api/chat/visibility", chatHandler.UpdateVisibility)
	mux.HandleFunc("POST /api/messages/delete-trailing", chatHandler.DeleteTrailingMessages)

	// Vote routes
	mux.HandleFunc("GET /api/vote", voteHandler.ListVotes)
	mux.HandleFunc("PATCH /api/vote", voteHandler.Vote)
	mux.HandleFunc("POST /api/vote", voteHandler.Vote)

	// Document and suggestion routes
	mux.HandleFunc("GET /api/document", documentHandler.ListVersions)
	mux.HandleFunc("POST /api/document", documentHandler.SaveVersion)
	mux.HandleFunc("DELETE /api/document", documentHandler.DeleteVersionsAfter)
	mux.HandleFunc("GET /api/suggestions", suggestionHandler.ListSuggestions)
	mux.HandleFunc("POST /api/suggestions", suggestionHandler.SaveSuggestions)

	// Upload route plus static serving of locally stored blobs
	mux.HandleFunc("POST /api/files/upload", uploadHandler.Upload)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other).
	// Identity must run before RateLimit so the limiter can key by user.
	// Order: CORS, Logging, Identity, Recovery, RateLimit, Routes
	httpHandler = middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)
	httpHandler = middleware.Identity(verifier, logger)(httpHandler)
	httpHandler = middleware.Logging(logger)(httpHandler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
