package api

import (
	"context"

	"chatbot-api/internal/domain"
)

type mockChatService struct {
	chatFn      func(ctx context.Context, userInput string) (string, error)
	summarizeFn func(ctx context.Context, text string) (string, error)
	translateFn func(ctx context.Context, text, targetLanguage string) (string, error)
	sentimentFn func(ctx context.Context, text string) (string, error)
}

func (m *mockChatService) Chat(ctx context.Context, userInput string) (string, error) {
	if m.chatFn == nil {
		panic("mockChatService.Chat called unexpectedly")
	}
	return m.chatFn(ctx, userInput)
}

func (m *mockChatService) Summarize(ctx context.Context, text string) (string, error) {
	if m.summarizeFn == nil {
		panic("mockChatService.Summarize called unexpectedly")
	}
	return m.summarizeFn(ctx, text)
}

func (m *mockChatService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if m.translateFn == nil {
		panic("mockChatService.Translate called unexpectedly")
	}
	return m.translateFn(ctx, text, targetLanguage)
}

func (m *mockChatService) Sentiment(ctx context.Context, text string) (string, error) {
	if m.sentimentFn == nil {
		panic("mockChatService.Sentiment called unexpectedly")
	}
	return m.sentimentFn(ctx, text)
}

type mockHistoryService struct {
	listFn   func(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error)
	getFn    func(ctx context.Context, id int64) (*domain.HistoryRecord, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockHistoryService) List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
	if m.listFn == nil {
		panic("mockHistoryService.List called unexpectedly")
	}
	return m.listFn(ctx, page)
}

func (m *mockHistoryService) Get(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	if m.getFn == nil {
		panic("mockHistoryService.Get called unexpectedly")
	}
	return m.getFn(ctx, id)
}

func (m *mockHistoryService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn == nil {
		panic("mockHistoryService.Delete called unexpectedly")
	}
	return m.deleteFn(ctx, id)
}
