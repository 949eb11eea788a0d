// Package ingest provides the ingestion pipeline that turns restaurant
// records into vector index entries: validate, summarize, batch-embed,
// verify, upsert. A call either commits every record or none of them.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/engine/semantic"
	"github.com/foodexpress/foodexpress-mvp/pkg/fn"
)

// Embedder is the slice of the embedding gateway the pipeline consumes.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorUpserter is the slice of the vector store the pipeline consumes.
type VectorUpserter interface {
	Upsert(ctx context.Context, records []semantic.VectorRecord) (int, error)
}

// Deps holds the external dependencies for the ingestion pipeline.
type Deps struct {
	Embedder Embedder
	Store    VectorUpserter
	Logger   *slog.Logger
}

// --- Pipeline stages ---

// Validate rejects batches containing records without an id.
var Validate fn.Stage[[]domain.Restaurant, []domain.Restaurant] = func(_ context.Context, records []domain.Restaurant) fn.Result[[]domain.Restaurant] {
	if err := domain.ValidateBatch(records); err != nil {
		return fn.Err[[]domain.Restaurant](err)
	}
	return fn.Ok(records)
}

// Summarize builds the embeddable summary text for each record.
var Summarize fn.Stage[[]domain.Restaurant, SummarizedBatch] = fn.MapStage(func(records []domain.Restaurant) SummarizedBatch {
	return SummarizedBatch{
		Restaurants: records,
		Summaries:   fn.Map(records, Summary),
	}
})

// NewEmbed creates the stage that batch-embeds all summaries. A count
// mismatch between input and returned embeddings aborts the call; it guards
// against silent provider truncation.
func NewEmbed(embedder Embedder) fn.Stage[SummarizedBatch, EmbeddedBatch] {
	return func(ctx context.Context, batch SummarizedBatch) fn.Result[EmbeddedBatch] {
		if len(batch.Summaries) == 0 {
			return fn.Ok(EmbeddedBatch{SummarizedBatch: batch})
		}

		embeddings, err := embedder.EmbedBatch(ctx, batch.Summaries)
		if err != nil {
			return fn.Err[EmbeddedBatch](fmt.Errorf("ingest: embed batch: %w", err))
		}
		if len(embeddings) != len(batch.Restaurants) {
			return fn.Err[EmbeddedBatch](fmt.Errorf("ingest: got %d embeddings for %d records: %w",
				len(embeddings), len(batch.Restaurants), domain.ErrEmbeddingCountMismatch))
		}

		return fn.Ok(EmbeddedBatch{SummarizedBatch: batch, Embeddings: embeddings})
	}
}

// NewStore creates the stage that upserts all entries in one batched call
// and yields the committed count.
func NewStore(store VectorUpserter) fn.Stage[EmbeddedBatch, int] {
	return func(ctx context.Context, batch EmbeddedBatch) fn.Result[int] {
		records := make([]semantic.VectorRecord, len(batch.Restaurants))
		for i, r := range batch.Restaurants {
			records[i] = semantic.VectorRecord{
				ID:        r.ID.String(),
				Embedding: batch.Embeddings[i],
				Payload:   r,
			}
		}
		return fn.FromPair(store.Upsert(ctx, records))
	}
}

// NewPipeline wires the full ingestion pipeline. The returned stage takes a
// batch of restaurant records and yields the number of entries upserted.
func NewPipeline(deps Deps) fn.Stage[[]domain.Restaurant, int] {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	validated := fn.TracedStage("ingest.validate", Validate)
	summarized := fn.Then(validated, fn.TracedStage("ingest.summarize", Summarize))
	embedded := fn.Then(summarized, fn.TracedStage("ingest.embed", NewEmbed(deps.Embedder)))
	stored := fn.Then(embedded, fn.TracedStage("ingest.store", NewStore(deps.Store)))

	return func(ctx context.Context, records []domain.Restaurant) fn.Result[int] {
		log.Info("ingest: start", "records", len(records))
		result := stored(ctx, records)
		if result.IsErr() {
			_, err := result.Unwrap()
			log.Error("ingest: failed, nothing upserted", "err", err)
			return result
		}
		count, _ := result.Unwrap()
		log.Info("ingest: upserted", "count", count)
		return result
	}
}
