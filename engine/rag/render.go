package rag

import (
	"fmt"
	"strings"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/pkg/fn"
)

// EmptySentinel is embedded in the prompt when retrieval plus filtering left
// nothing to ground the answer on. The model is instructed to say so.
const EmptySentinel = "No relevant restaurant data found."

// RenderRestaurants formats the filtered result set as one line per
// restaurant, the exact text the completion model is grounded on.
func RenderRestaurants(restaurants []domain.Restaurant) string {
	if len(restaurants) == 0 {
		return EmptySentinel
	}
	lines := fn.Map(restaurants, func(r domain.Restaurant) string {
		return fmt.Sprintf("%s (Rating: %s, Cuisines: %s)",
			r.Name,
			domain.FormatNumber(r.Rating),
			strings.Join(r.CuisineList(), ", "),
		)
	})
	return strings.Join(lines, "\n")
}

// ComposePrompt builds the grounding prompt: persona, the user's message
// verbatim, the only-use-supplied-data instruction, and the rendered data.
func ComposePrompt(message, restaurantText string) string {
	return fmt.Sprintf(`You are a helpful assistant for FoodExpress. User asked: %q. `+
		`Based ONLY on the following data, provide a direct answer. `+
		`If the data is empty, say you could not find any matching restaurants. `+
		`Relevant restaurants: %s`, message, restaurantText)
}
