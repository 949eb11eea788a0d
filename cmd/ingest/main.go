// Command ingest reads restaurant records from a JSON file and runs them
// through the ingestion pipeline into Qdrant. Useful for seeding the index
// without going through the API server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/engine/ingest"
	"github.com/foodexpress/foodexpress-mvp/engine/semantic"
	"github.com/foodexpress/foodexpress-mvp/pkg/gemini"
)

const vectorDims = 768

func main() {
	var (
		file       = flag.String("file", "", "JSON file with {\"restaurants\": [...]} or a bare array")
		qdrantAddr = flag.String("qdrant", "localhost:6334", "Qdrant gRPC address")
		collection = flag.String("collection", "restaurants", "Qdrant collection name")
		embedModel = flag.String("model", "text-embedding-004", "Gemini embedding model")
	)
	flag.Parse()

	log := slog.Default()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *file == "" {
		log.Error("missing -file")
		os.Exit(2)
	}

	records, err := readRecords(*file)
	if err != nil {
		log.Error("read records failed", "err", err)
		os.Exit(1)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Error("GEMINI_API_KEY is required")
		os.Exit(2)
	}

	ai, err := gemini.New(ctx, apiKey, *embedModel, "gemini-1.5-flash")
	if err != nil {
		log.Error("gemini client failed", "err", err)
		os.Exit(1)
	}
	defer ai.Close()

	store, err := semantic.New(*qdrantAddr, *collection)
	if err != nil {
		log.Error("qdrant connect failed", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureCollection(ctx, vectorDims); err != nil {
		log.Error("ensure collection failed", "err", err)
		os.Exit(1)
	}

	pipeline := ingest.NewPipeline(ingest.Deps{Embedder: ai, Store: store, Logger: log})
	count, err := pipeline(ctx, records).Unwrap()
	if err != nil {
		log.Error("ingest failed, nothing upserted", "err", err)
		os.Exit(1)
	}
	log.Info("done", "upserted", count)
}

// readRecords accepts either a wrapped {"restaurants": [...]} document, the
// same shape the API endpoint takes, or a bare JSON array.
func readRecords(path string) ([]domain.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Restaurants []domain.Restaurant `json:"restaurants"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Restaurants != nil {
		return wrapped.Restaurants, nil
	}

	var records []domain.Restaurant
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
