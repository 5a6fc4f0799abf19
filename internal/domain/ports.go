package domain

import "context"

// HistoryRepository is the durable store for HistoryRecord.
// Implemented by repository.HistoryRepo.
type HistoryRepository interface {
	// Insert appends one record, assigning id and created_at, and commits
	// before returning. The caller observes either a fully persisted record
	// or an error — never a partial write.
	Insert(ctx context.Context, query string, response, endpoint *string) (*HistoryRecord, error)
	// List returns records ordered by created_at descending (id descending
	// on ties), honoring the page's limit and offset.
	List(ctx context.Context, page Page) ([]HistoryRecord, error)
	// GetByID returns the record or a NotFoundError.
	GetByID(ctx context.Context, id int64) (*HistoryRecord, error)
	// DeleteByID reports whether a record was removed. A missing id is not
	// an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// ChatModel produces a completion for a prompt.
// Implemented by llm.Client.
type ChatModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
