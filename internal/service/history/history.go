// Package history provides the supported operations on history records:
// create, paginated list, point lookup, and point deletion. Records are
// never updated.
package history

import (
	"context"

	"chatbot-api/internal/domain"
)

// Service is the caller-facing boundary of the history store.
type Service struct {
	repo domain.HistoryRepository
}

// NewService creates a new history Service.
func NewService(repo domain.HistoryRepository) *Service {
	return &Service{repo: repo}
}

// Create persists one record and returns it fully populated with the
// store-assigned id and created_at. An empty query is allowed.
func (s *Service) Create(ctx context.Context, query string, response, endpoint *string) (*domain.HistoryRecord, error) {
	return s.repo.Insert(ctx, query, response, endpoint)
}

// List returns records newest first. The page is validated here — limits
// outside [1, MaxLimit] and negative offsets are rejected, not clamped.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page)
}

// Get returns the record with the given id, or a NotFoundError.
func (s *Service) Get(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the record with the given id, reporting whether anything
// was removed. A second delete of the same id returns false, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}
