// Package chat orchestrates the LLM-backed endpoints: it builds the prompt
// for each operation, calls the chat model, and logs the interaction to the
// history store.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"chatbot-api/internal/domain"
)

// Service forwards user text to the chat model and records each successful
// exchange.
type Service struct {
	model   domain.ChatModel
	history domain.HistoryRepository
	logger  *slog.Logger
}

// NewService creates a chat Service.
func NewService(model domain.ChatModel, history domain.HistoryRepository, logger *slog.Logger) *Service {
	return &Service{model: model, history: history, logger: logger}
}

// Chat sends the user's input to the model verbatim.
func (s *Service) Chat(ctx context.Context, userInput string) (string, error) {
	return s.run(ctx, userInput, userInput, "chat")
}

// Summarize asks the model for a concise summary of text.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Summarize the following text clearly and concisely:\n\n%s", text)
	return s.run(ctx, text, prompt, "summarize")
}

// Translate asks the model to translate text into targetLanguage. The
// history record is tagged "translate:<language>".
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text to %s:\n\n%s", targetLanguage, text)
	return s.run(ctx, text, prompt, "translate:"+targetLanguage)
}

// Sentiment asks the model to classify the sentiment of text.
func (s *Service) Sentiment(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Analyze the sentiment of the following text and respond with Positive, Negative, or Neutral:\n\n%s", text)
	return s.run(ctx, text, prompt, "sentiment")
}

// run performs one model call and appends a history record tagged with
// endpoint. The history write is best-effort: a storage failure is logged
// and the model's response is still returned. A model failure writes
// nothing and propagates.
func (s *Service) run(ctx context.Context, query, prompt, endpoint string) (string, error) {
	response, err := s.model.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	if _, err := s.history.Insert(ctx, query, &response, &endpoint); err != nil {
		s.logger.Warn("history write failed", "endpoint", endpoint, "error", err)
	}

	return response, nil
}
