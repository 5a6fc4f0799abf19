package domain

import "time"

// HistoryRecord is one logged LLM interaction: the user's input, the
// provider's response (nil when the call produced none), a free-text label
// for the endpoint that produced it, and the creation timestamp assigned by
// the store. Records are immutable once created; there is no update
// operation, only point deletion.
type HistoryRecord struct {
	ID        int64     `json:"id"`
	Query     string    `json:"query"`
	Response  *string   `json:"response"`
	Endpoint  *string   `json:"endpoint"`
	CreatedAt time.Time `json:"created_at"`
}
