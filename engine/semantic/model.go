package semantic

import "github.com/foodexpress/foodexpress-mvp/engine/domain"

// VectorRecord is a single vector to store, keyed by the restaurant id.
type VectorRecord struct {
	ID        string
	Embedding []float32
	Payload   domain.Restaurant
}

// SearchResult is a single vector search hit with its stored restaurant.
type SearchResult struct {
	ID         string            `json:"id"`
	Score      float32           `json:"score"`
	Restaurant domain.Restaurant `json:"restaurant"`
}
