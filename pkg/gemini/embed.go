// Package gemini wraps the Google Generative AI SDK behind the narrow
// embedding and completion surfaces the engine pipelines consume.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/foodexpress/foodexpress-mvp/pkg/fn"
)

// EmbedBatchSize is the max texts per BatchEmbedContents request.
const EmbedBatchSize = 100

// Client owns the SDK connection and the configured model handles.
type Client struct {
	client *genai.Client
	embed  *genai.EmbeddingModel
	chat   *genai.GenerativeModel
}

// New creates a Gemini client for the given API key and model names.
func New(ctx context.Context, apiKey, embedModel, chatModel string) (*Client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Client{
		client: c,
		embed:  c.EmbeddingModel(embedModel),
		chat:   c.GenerativeModel(chatModel),
	}, nil
}

// Close releases the underlying SDK connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// EmbedOne converts one text into its embedding vector.
func (c *Client) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.embed.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini: embed: %w", err)
	}
	if resp.Embedding == nil {
		return nil, fmt.Errorf("gemini: embed: empty response")
	}
	return resp.Embedding.Values, nil
}

// EmbedBatch converts texts into embedding vectors, preserving input order
// and length. Requests are chunked at EmbedBatchSize texts.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))

	for _, group := range fn.Chunk(texts, EmbedBatchSize) {
		batch := c.embed.NewBatch()
		for _, text := range group {
			batch = batch.AddContent(genai.Text(text))
		}

		resp, err := c.embed.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("gemini: embed batch: %w", err)
		}

		for i, emb := range resp.Embeddings {
			if emb == nil {
				return nil, fmt.Errorf("gemini: embed batch: nil embedding at %d", len(out)+i)
			}
			out = append(out, emb.Values)
		}
	}
	return out, nil
}
