package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// Complete runs a single-turn generation and returns the model's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.chat.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	text, err := ResponseText(resp)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return text, nil
}

// ResponseText concatenates the text parts of the first candidate. A response
// with no candidates or no text parts is an error, not an empty answer.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", fmt.Errorf("candidate has no content")
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("candidate has no text parts")
	}
	return b.String(), nil
}
