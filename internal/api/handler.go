// Package api provides the HTTP handlers for the chatbot REST API.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"chatbot-api/internal/domain"
)

// ChatService is the LLM-facing surface the handlers need.
type ChatService interface {
	Chat(ctx context.Context, userInput string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	Sentiment(ctx context.Context, text string) (string, error)
}

// HistoryService is the history-store surface the handlers need.
type HistoryService interface {
	List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error)
	Get(ctx context.Context, id int64) (*domain.HistoryRecord, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// APIHandler serves the chatbot endpoints.
type APIHandler struct {
	chat    ChatService
	history HistoryService
}

// NewHandler creates an APIHandler with its service dependencies.
func NewHandler(chat ChatService, history HistoryService) *APIHandler {
	return &APIHandler{chat: chat, history: history}
}

// errorBody is the JSON error envelope used by every endpoint.
type errorBody struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorBody{Detail: detail})
}

func respondDomainError(w http.ResponseWriter, err error) {
	respondError(w, httpStatusFromDomainError(err), err.Error())
}

// decodeBody parses the request body into dst. Unknown fields are ignored.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
