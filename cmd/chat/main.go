// Command chat is a minimal REPL over the RAG pipeline: type a question,
// get a grounded answer. Handy for poking at the index without the API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/foodexpress/foodexpress-mvp/engine/rag"
	"github.com/foodexpress/foodexpress-mvp/engine/semantic"
	"github.com/foodexpress/foodexpress-mvp/pkg/gemini"
)

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is required")
		os.Exit(2)
	}

	ai, err := gemini.New(ctx, apiKey,
		envOr("EMBED_MODEL", "text-embedding-004"),
		envOr("CHAT_MODEL", "gemini-1.5-flash"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gemini client:", err)
		os.Exit(1)
	}
	defer ai.Close()

	store, err := semantic.New(envOr("QDRANT_URL", "localhost:6334"), envOr("QDRANT_COLLECTION", "restaurants"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "qdrant connect:", err)
		os.Exit(1)
	}
	defer store.Close()

	svc := rag.New(ai, store, ai, rag.DefaultOptions(), logger)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("FoodExpress chat. Ask about restaurants, Ctrl-D to quit.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		answer, err := svc.Answer(ctx, question)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(answer)
	}
}
