// Package main implements the FoodExpress API server: the listing proxy, the
// ingestion endpoint, and the RAG chatbot.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/foodexpress/foodexpress-mvp/engine/ingest"
	"github.com/foodexpress/foodexpress-mvp/engine/listing"
	"github.com/foodexpress/foodexpress-mvp/engine/rag"
	"github.com/foodexpress/foodexpress-mvp/engine/semantic"
	"github.com/foodexpress/foodexpress-mvp/pkg/gemini"
	"github.com/foodexpress/foodexpress-mvp/pkg/metrics"
	"github.com/foodexpress/foodexpress-mvp/pkg/mid"
)

// vectorDims is the output dimensionality of text-embedding-004.
const vectorDims = 768

// Config holds all environment-based configuration.
type Config struct {
	Port         string
	GeminiAPIKey string
	EmbedModel   string
	ChatModel    string
	QdrantURL    string
	Collection   string
	ListingURL   string
	NATSURL      string
	CORSOrigin   string
}

func loadConfig() Config {
	return Config{
		Port:         envOr("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		EmbedModel:   envOr("EMBED_MODEL", "text-embedding-004"),
		ChatModel:    envOr("CHAT_MODEL", "gemini-1.5-flash"),
		QdrantURL:    envOr("QDRANT_URL", "localhost:6334"),
		Collection:   envOr("QDRANT_COLLECTION", "restaurants"),
		ListingURL:   envOr("LISTING_URL", listing.DefaultURL),
		NATSURL:      os.Getenv("NATS_URL"),
		CORSOrigin:   envOr("CORS_ORIGIN", "*"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	// --- Gemini (embeddings + completion) ---
	ai, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.EmbedModel, cfg.ChatModel)
	if err != nil {
		return fmt.Errorf("gemini client: %w", err)
	}
	defer ai.Close()

	// --- Qdrant ---
	vectorStore, err := semantic.New(cfg.QdrantURL, cfg.Collection)
	if err != nil {
		return fmt.Errorf("qdrant connect: %w", err)
	}
	defer vectorStore.Close()

	if err := vectorStore.EnsureCollection(ctx, vectorDims); err != nil {
		return fmt.Errorf("ensure collection: %w", err)
	}

	// --- Pipelines ---
	ragSvc := rag.New(ai, vectorStore, ai, rag.DefaultOptions(), logger)
	ingestPipeline := ingest.NewPipeline(ingest.Deps{
		Embedder: ai,
		Store:    vectorStore,
		Logger:   logger,
	})
	listingClient := listing.New(cfg.ListingURL)

	// --- Optional async ingest over NATS ---
	if cfg.NATSURL != "" {
		nc, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			return fmt.Errorf("nats connect: %w", err)
		}
		defer nc.Drain()

		sub, err := ingest.StartConsumer(nc, ingest.Deps{
			Embedder: ai,
			Store:    vectorStore,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("ingest consumer: %w", err)
		}
		defer sub.Unsubscribe()
		logger.Info("async ingest consumer started", "subject", ingest.IngestSubject)
	}

	// --- HTTP server ---
	met := metrics.New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/get-restaurants", handleGetRestaurants(listingClient, logger, met))
	mux.HandleFunc("POST /api/chatbot", handleChatbot(ragSvc, logger, met))
	mux.HandleFunc("POST /api/upsert-restaurants", handleUpsertRestaurants(ingestPipeline, logger, met))
	mux.Handle("GET /metrics", met.Handler())

	handler := mid.Chain(mux,
		mid.Recover(logger),
		mid.Logger(logger),
		mid.CORS(cfg.CORSOrigin),
		mid.OTel("foodexpress-api"),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
