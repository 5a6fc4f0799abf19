// Package llm wraps the OpenAI-compatible chat completion API used to
// produce responses. Groq exposes this API, so the same client serves the
// default deployment and any self-hosted compatible endpoint.
package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"chatbot-api/internal/config"
	"chatbot-api/internal/domain"
)

var _ domain.ChatModel = (*Client)(nil)

// completionAPI is the subset of openai.Client that Complete needs.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client produces chat completions from a configured model.
type Client struct {
	api         completionAPI
	model       string
	temperature float32
}

// New creates a Client for the configured provider endpoint.
func New(cfg config.LLMConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's content. Nothing is retried here.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: provider returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
