// Package rag orchestrates the retrieval-augmented query pipeline. It embeds
// a user message, searches the vector index for the closest restaurants,
// applies heuristic filters parsed from the message, and grounds a completion
// model on the rendered results.
package rag

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/engine/semantic"
	"github.com/foodexpress/foodexpress-mvp/pkg/fn"
)

// Embedder is the slice of the embedding gateway the pipeline consumes.
type Embedder interface {
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// Searcher abstracts vector search over the restaurant index.
type Searcher interface {
	Search(ctx context.Context, embedding []float32, topK int) ([]semantic.SearchResult, error)
}

// Completer abstracts the generative completion model.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configures the pipeline behaviour.
type Options struct {
	TopK          int
	SearchTimeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		TopK:          5,
		SearchTimeout: 5 * time.Second,
	}
}

// Service is the RAG orchestration service. It holds no per-request state;
// the injected gateways live for the whole process.
type Service struct {
	embed    Embedder
	search   Searcher
	complete Completer
	opts     Options
	logger   *slog.Logger
}

// New creates a Service over the injected gateways.
func New(embed Embedder, search Searcher, complete Completer, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		embed:    embed,
		search:   search,
		complete: complete,
		opts:     opts,
		logger:   logger,
	}
}

// Answer runs the full pipeline for one user message and returns the model's
// generated text unmodified. An empty retrieval is still a normal answer;
// the model just gets the empty-data sentinel. Provider failures propagate.
func (s *Service) Answer(ctx context.Context, message string) (string, error) {
	if err := domain.ValidateMessage(message); err != nil {
		return "", err
	}
	s.logger.Info("rag: query start", "message_len", len(message))

	retrieve := fn.TracedStage("rag.retrieve", s.retrieveStage())
	filter := fn.TracedStage("rag.filter", s.filterStage(message))
	generate := fn.TracedStage("rag.generate", s.generateStage(message))

	result := fn.Then(fn.Then(retrieve, filter), generate)(ctx, message)
	answer, err := result.Unwrap()
	if err != nil {
		return "", err
	}
	return answer, nil
}

// retrieveStage embeds the message and searches the index.
func (s *Service) retrieveStage() fn.Stage[string, []domain.Restaurant] {
	return func(ctx context.Context, message string) fn.Result[[]domain.Restaurant] {
		embedding, err := s.embed.EmbedOne(ctx, message)
		if err != nil {
			return fn.Err[[]domain.Restaurant](fmt.Errorf("rag: embed query: %w", err))
		}

		searchCtx, cancel := context.WithTimeout(ctx, s.opts.SearchTimeout)
		defer cancel()

		hits, err := s.search.Search(searchCtx, embedding, s.opts.TopK)
		if err != nil {
			return fn.Err[[]domain.Restaurant](fmt.Errorf("rag: search: %w", err))
		}
		s.logger.Info("rag: search done", "hits", len(hits))

		return fn.Ok(fn.Map(hits, func(h semantic.SearchResult) domain.Restaurant {
			return h.Restaurant
		}))
	}
}

// filterStage applies predicates parsed from the message.
func (s *Service) filterStage(message string) fn.Stage[[]domain.Restaurant, []domain.Restaurant] {
	return fn.MapStage(func(restaurants []domain.Restaurant) []domain.Restaurant {
		return ApplyFilters(restaurants, ParseFilters(message))
	})
}

// generateStage renders the results, composes the prompt, and invokes the model.
func (s *Service) generateStage(message string) fn.Stage[[]domain.Restaurant, string] {
	return func(ctx context.Context, restaurants []domain.Restaurant) fn.Result[string] {
		prompt := ComposePrompt(message, RenderRestaurants(restaurants))
		answer, err := s.complete.Complete(ctx, prompt)
		if err != nil {
			return fn.Err[string](fmt.Errorf("rag: generate: %w", err))
		}
		return fn.Ok(answer)
	}
}
