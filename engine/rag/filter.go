package rag

import (
	"regexp"
	"strconv"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/pkg/fn"
)

// Predicate decides whether a retrieved restaurant survives post-filtering.
type Predicate func(domain.Restaurant) bool

// ratingAbovePattern matches phrases like "rating above 4.2". The captured
// number is the inclusive lower bound.
var ratingAbovePattern = regexp.MustCompile(`rating above (\d+(?:\.\d+)?)`)

// ParseFilters extracts filter predicates from a free-text message. This is a
// best-effort textual heuristic, not a query language; price and delivery
// time filters would slot in here the same way.
func ParseFilters(message string) []Predicate {
	var preds []Predicate
	if m := ratingAbovePattern.FindStringSubmatch(message); m != nil {
		if min, err := strconv.ParseFloat(m[1], 64); err == nil {
			preds = append(preds, RatingAtLeast(min))
		}
	}
	return preds
}

// RatingAtLeast keeps restaurants whose rating is >= min. The comparison is
// strict floating-point, no tolerance. Restaurants without a rating cannot
// satisfy a rating bound and are excluded.
func RatingAtLeast(min float64) Predicate {
	return func(r domain.Restaurant) bool {
		return r.Rating != nil && *r.Rating >= min
	}
}

// ApplyFilters returns the restaurants satisfying every predicate.
func ApplyFilters(restaurants []domain.Restaurant, preds []Predicate) []domain.Restaurant {
	if len(preds) == 0 {
		return restaurants
	}
	return fn.Filter(restaurants, func(r domain.Restaurant) bool {
		return fn.All(preds, func(p Predicate) bool { return p(r) })
	})
}
