package ingest

import (
	"fmt"
	"strings"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
)

// SummarizedBatch pairs each restaurant with its embeddable summary text.
// Summaries[i] always describes Restaurants[i].
type SummarizedBatch struct {
	Restaurants []domain.Restaurant
	Summaries   []string
}

// EmbeddedBatch adds one embedding per restaurant, same order.
type EmbeddedBatch struct {
	SummarizedBatch
	Embeddings [][]float32
}

// Summary builds the deterministic text embedded for a restaurant. Missing
// name renders as an empty segment; absent numeric fields render as "N/A".
func Summary(r domain.Restaurant) string {
	return fmt.Sprintf("%s - %s - Delivery time: %s mins - Cost for two: %s",
		r.Name,
		strings.Join(r.CuisineList(), ", "),
		domain.FormatNumber(r.DeliveryTime),
		domain.FormatNumber(r.CostForTwo),
	)
}
