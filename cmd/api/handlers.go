package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/foodexpress/foodexpress-mvp/engine/domain"
	"github.com/foodexpress/foodexpress-mvp/pkg/fn"
	"github.com/foodexpress/foodexpress-mvp/pkg/metrics"
)

// chatService answers a natural-language question.
type chatService interface {
	Answer(ctx context.Context, message string) (string, error)
}

// listingFetcher fetches the upstream listing body verbatim.
type listingFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// ChatRequest is the JSON body for POST /api/chatbot.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the JSON response for POST /api/chatbot.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// UpsertRequest is the JSON body for POST /api/upsert-restaurants.
type UpsertRequest struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
}

// UpsertResponse is the JSON response for POST /api/upsert-restaurants.
type UpsertResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetRestaurants proxies the upstream listing endpoint verbatim.
func handleGetRestaurants(fetcher listingFetcher, logger *slog.Logger, met *metrics.Registry) http.HandlerFunc {
	dur := met.Histogram("foodexpress_listing_fetch_duration_seconds", "Upstream listing fetch time", nil)
	errs := met.Counter("foodexpress_listing_errors_total", "Upstream listing fetch failures")

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		body, err := fetcher.Fetch(r.Context())
		dur.Since(start)
		if err != nil {
			errs.Inc()
			logger.Error("listing fetch failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch restaurant data")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

// handleChatbot validates the message and runs the RAG pipeline. An empty
// message is rejected here, before any provider is invoked.
func handleChatbot(chat chatService, logger *slog.Logger, met *metrics.Registry) http.HandlerFunc {
	reqs := met.Counter("foodexpress_chat_requests_total", "Chat requests received")
	errs := met.Counter("foodexpress_chat_errors_total", "Chat pipeline failures")
	dur := met.Histogram("foodexpress_chat_duration_seconds", "Full chat pipeline time", nil)

	return func(w http.ResponseWriter, r *http.Request) {
		reqs.Inc()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := domain.ValidateMessage(req.Message); err != nil {
			writeError(w, http.StatusBadRequest, "Message is required")
			return
		}

		start := time.Now()
		answer, err := chat.Answer(r.Context(), req.Message)
		dur.Since(start)
		if err != nil {
			if domain.IsClientError(err) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			errs.Inc()
			logger.Error("chat pipeline failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
			return
		}

		writeJSON(w, http.StatusOK, ChatResponse{Answer: answer})
	}
}

// handleUpsertRestaurants runs the ingestion pipeline over the posted batch.
func handleUpsertRestaurants(pipeline fn.Stage[[]domain.Restaurant, int], logger *slog.Logger, met *metrics.Registry) http.HandlerFunc {
	upserted := met.Counter("foodexpress_restaurants_upserted_total", "Restaurant records upserted")
	errs := met.Counter("foodexpress_upsert_errors_total", "Ingestion pipeline failures")
	dur := met.Histogram("foodexpress_upsert_duration_seconds", "Full ingestion pipeline time", nil)

	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		start := time.Now()
		result := pipeline(r.Context(), req.Restaurants)
		dur.Since(start)

		count, err := result.Unwrap()
		if err != nil {
			if isClientErr(err) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			errs.Inc()
			logger.Error("upsert pipeline failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to upsert restaurants")
			return
		}

		upserted.Add(int64(count))
		writeJSON(w, http.StatusOK, UpsertResponse{Message: "Restaurants upserted successfully!"})
	}
}

func isClientErr(err error) bool {
	return domain.IsClientError(err) || errors.As(err, new(*domain.ValidationError))
}
