// Package repository implements durable storage for history records over
// database/sql.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"chatbot-api/internal/domain"
)

// HistoryRepo persists HistoryRecord rows in the search_history table.
// Writes go through the single-connection write pool, reads through the
// read pool, so a slow insert never blocks concurrent list calls. Each
// method checks out a pooled connection for the duration of one statement
// and releases it on every exit path.
type HistoryRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewHistoryRepo creates a HistoryRepo over a write/read pool pair.
func NewHistoryRepo(writeDB, readDB *sql.DB) *HistoryRepo {
	return &HistoryRepo{writeDB: writeDB, readDB: readDB}
}

var _ domain.HistoryRepository = (*HistoryRepo)(nil)

// Insert appends one record. The clock is read only after the single write
// connection has been checked out, so created_at order always matches
// insert order under concurrent callers. The statement auto-commits — the
// caller sees either a fully persisted record or an error.
func (r *HistoryRepo) Insert(ctx context.Context, query string, response, endpoint *string) (*domain.HistoryRecord, error) {
	conn, err := r.writeDB.Conn(ctx)
	if err != nil {
		return nil, domain.ErrStorage(err, "acquire write connection")
	}
	defer conn.Close() //nolint:errcheck

	createdAt := time.Now().UTC()

	res, err := conn.ExecContext(ctx,
		`INSERT INTO search_history (query, response, endpoint, created_at) VALUES (?, ?, ?, ?)`,
		query, response, endpoint, createdAt,
	)
	if err != nil {
		return nil, domain.ErrStorage(err, "insert history record")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, domain.ErrStorage(err, "read inserted history id")
	}

	return &domain.HistoryRecord{
		ID:        id,
		Query:     query,
		Response:  response,
		Endpoint:  endpoint,
		CreatedAt: createdAt,
	}, nil
}

// List returns records newest first. Ties in created_at are broken by id
// descending so pagination over same-timestamp inserts stays deterministic.
func (r *HistoryRepo) List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id, query, response, endpoint, created_at
		   FROM search_history
		  ORDER BY created_at DESC, id DESC
		  LIMIT ? OFFSET ?`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, domain.ErrStorage(err, "list history records")
	}
	defer rows.Close() //nolint:errcheck

	records := make([]domain.HistoryRecord, 0, page.Limit)
	for rows.Next() {
		var rec domain.HistoryRecord
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.Response, &rec.Endpoint, &rec.CreatedAt); err != nil {
			return nil, domain.ErrStorage(err, "scan history record")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStorage(err, "list history records")
	}

	return records, nil
}

// GetByID returns the record with the given id, or a NotFoundError.
// Absence is a normal outcome, not a storage failure.
func (r *HistoryRepo) GetByID(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	var rec domain.HistoryRecord
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, query, response, endpoint, created_at FROM search_history WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Query, &rec.Response, &rec.Endpoint, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("history record %d not found", id)
	}
	if err != nil {
		return nil, domain.ErrStorage(err, "get history record %d", id)
	}

	return &rec, nil
}

// DeleteByID removes the record with the given id and reports whether a row
// was deleted. Deleting a missing id is not an error.
func (r *HistoryRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.writeDB.ExecContext(ctx, `DELETE FROM search_history WHERE id = ?`, id)
	if err != nil {
		return false, domain.ErrStorage(err, "delete history record %d", id)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, domain.ErrStorage(err, "delete history record %d", id)
	}

	return affected > 0, nil
}
