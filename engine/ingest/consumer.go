package ingest

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/pkg/natsutil"
)

const (
	// IngestSubject receives batches of restaurant records for async ingestion.
	IngestSubject = "engine.restaurants.ingest"
	// DLQSubject receives batches whose ingestion failed. No redelivery is
	// attempted; a failed batch goes straight to the dead letter queue.
	DLQSubject = "engine.restaurants.ingest.dlq"
)

// dlqMessage is published to the DLQ when a batch fails.
type dlqMessage struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Error       string              `json:"error"`
}

// StartConsumer subscribes the ingestion pipeline to IngestSubject. Each
// message carries a JSON array of restaurant records and runs through the
// same all-or-nothing pipeline as the HTTP path.
func StartConsumer(nc *nats.Conn, deps Deps) (*nats.Subscription, error) {
	pipeline := NewPipeline(deps)
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return natsutil.Subscribe(nc, IngestSubject, func(ctx context.Context, records []domain.Restaurant) {
		result := pipeline(ctx, records)
		if result.IsErr() {
			_, err := result.Unwrap()
			log.Error("ingest: async batch failed", "records", len(records), "err", err)
			dlq := dlqMessage{Restaurants: records, Error: err.Error()}
			if pubErr := natsutil.Publish(ctx, nc, DLQSubject, dlq); pubErr != nil {
				log.Error("ingest: DLQ publish failed", "err", pubErr)
			}
			return
		}
		count, _ := result.Unwrap()
		log.Info("ingest: async batch done", "count", count)
	})
}
