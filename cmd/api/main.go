package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"strings"

	"archive-search/internal/config"
	"archive-search/internal/embedding"
	"archive-search/internal/generation"
	"archive-search/internal/http"
	"archive-search/internal/rag"
	"archive-search/internal/storage"
	"archive-search/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// Initialize metadata store
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	articleRepo := storage.NewArticleRepo(db)

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL, cfg.QdrantAPIKey, cfg.QdrantCollection)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	slog.Info("Qdrant store ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Embedding service is reached through a lazy gateway so startup does
	// not depend on its availability.
	embedder := embedding.NewGateway(func() (embedding.Embedder, error) {
		return embedding.NewClient(
			cfg.EmbeddingBaseURL,
			cfg.EmbeddingAPIKey,
			cfg.EmbeddingModelName,
			cfg.QdrantVectorSize,
		), nil
	})

	// Create generation client
	generator := generation.NewClient(generation.DefaultBaseURL, cfg.GeminiAPIKey, cfg.GeminiModelName)

	// Create RAG engine
	ragEngine := rag.NewEngine(embedder, vectorStore, generator, cfg.SearchLimit)
	slog.Info("RAG engine initialized", "limit", cfg.SearchLimit, "model", cfg.GeminiModelName)

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		Engine:   ragEngine,
		Articles: articleRepo,
		Searcher: vectorStore,
		DB:       db,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
