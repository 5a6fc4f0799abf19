package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chatbot-api/internal/domain"
)

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

// HandleListHistory serves GET /history with optional limit/offset query
// parameters.
func (h *APIHandler) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	page := domain.DefaultPage()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		page.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		page.Offset = offset
	}

	records, err := h.history.List(r.Context(), page)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// HandleGetHistory serves GET /history/{id}.
func (h *APIHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := historyID(w, r)
	if !ok {
		return
	}

	record, err := h.history.Get(r.Context(), id)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// HandleDeleteHistory serves DELETE /history/{id}.
func (h *APIHandler) HandleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := historyID(w, r)
	if !ok {
		return
	}

	deleted, err := h.history.Delete(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	respondJSON(w, http.StatusOK, deleteResponse{Deleted: true})
}

// historyID parses the {id} path parameter, writing a 400 on failure.
func historyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}
