package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbot-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestListHistory_DefaultPage(t *testing.T) {
	var gotPage domain.Page
	history := &mockHistoryService{
		listFn: func(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
			gotPage = page
			return []domain.HistoryRecord{
				{ID: 2, Query: "second", Response: strPtr("r2"), Endpoint: strPtr("chat"), CreatedAt: time.Now().UTC()},
				{ID: 1, Query: "first", CreatedAt: time.Now().UTC()},
			}, nil
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	rec := doJSON(t, router, http.MethodGet, "/history", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Page{Limit: domain.DefaultLimit, Offset: 0}, gotPage)

	var records []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.InDelta(t, float64(2), records[0]["id"], 0.001)
	assert.Equal(t, "r2", records[0]["response"])
	assert.Equal(t, "chat", records[0]["endpoint"])
	assert.Nil(t, records[1]["response"])
	assert.Nil(t, records[1]["endpoint"])
}

func TestListHistory_ExplicitPage(t *testing.T) {
	var gotPage domain.Page
	history := &mockHistoryService{
		listFn: func(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
			gotPage = page
			return []domain.HistoryRecord{}, nil
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	rec := doJSON(t, router, http.MethodGet, "/history?limit=5&offset=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Page{Limit: 5, Offset: 10}, gotPage)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListHistory_NonIntegerParams(t *testing.T) {
	router := newTestRouter(t, &mockChatService{}, &mockHistoryService{})

	rec := doJSON(t, router, http.MethodGet, "/history?limit=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "limit must be an integer", decodeMap(t, rec)["detail"])

	rec = doJSON(t, router, http.MethodGet, "/history?offset=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "offset must be an integer", decodeMap(t, rec)["detail"])
}

func TestListHistory_InvalidPageRejected(t *testing.T) {
	history := &mockHistoryService{
		listFn: func(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
			if err := page.Validate(); err != nil {
				return nil, err
			}
			return []domain.HistoryRecord{}, nil
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	for _, path := range []string{"/history?limit=0", "/history?limit=201", "/history?offset=-1"} {
		rec := doJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestGetHistory(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	history := &mockHistoryService{
		getFn: func(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
			require.Equal(t, int64(7), id)
			return &domain.HistoryRecord{
				ID:        7,
				Query:     "hello",
				Response:  strPtr("hi there"),
				Endpoint:  strPtr("chat"),
				CreatedAt: created,
			}, nil
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	rec := doJSON(t, router, http.MethodGet, "/history/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.InDelta(t, float64(7), body["id"], 0.001)
	assert.Equal(t, "hello", body["query"])
	assert.Equal(t, "hi there", body["response"])
	assert.Equal(t, "chat", body["endpoint"])
}

func TestGetHistory_NotFound(t *testing.T) {
	history := &mockHistoryService{
		getFn: func(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
			return nil, domain.ErrNotFound("history record %d not found", id)
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	rec := doJSON(t, router, http.MethodGet, "/history/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found", decodeMap(t, rec)["detail"])
}

func TestGetHistory_NonIntegerID(t *testing.T) {
	router := newTestRouter(t, &mockChatService{}, &mockHistoryService{})

	rec := doJSON(t, router, http.MethodGet, "/history/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id must be an integer", decodeMap(t, rec)["detail"])
}

func TestDeleteHistory(t *testing.T) {
	var gotID int64
	history := &mockHistoryService{
		deleteFn: func(ctx context.Context, id int64) (bool, error) {
			gotID = id
			return true, nil
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	rec := doJSON(t, router, http.MethodDelete, "/history/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, true, decodeMap(t, rec)["deleted"])
}

func TestDeleteHistory_NotFound(t *testing.T) {
	history := &mockHistoryService{
		deleteFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	router := newTestRouter(t, &mockChatService{}, history)

	rec := doJSON(t, router, http.MethodDelete, "/history/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found", decodeMap(t, rec)["detail"])
}
