package history

import (
	"context"
	"database/sql"
	"time"
)

const (
	OperationEncode = "encode"
	OperationDecode = "decode"
)

type TranscodeHistory interface {
	Add(ctx context.Context, fileName, operation string, sizeInBytes int64, errText string) error
	List(ctx context.Context, limit, offset int) (Result, error)
	Delete(ctx context.Context, id int64) error
}

type Result struct {
	Entries    []entry `json:"entries"`
	TotalCount int     `json:"total_count"`
	Offset     int     `json:"offset"`
	Limit      int     `json:"limit"`
}

type entry struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"file_name"`
	Operation   string    `json:"operation"`
	SizeInBytes int64     `json:"size_in_bytes"`
	Error       string    `json:"error"`
	CreatedAt   time.Time `json:"created_at"`
}

type transcodeHistory struct {
	db *sql.DB
}

func New(db *sql.DB) (TranscodeHistory, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transcode_history (
			id INTEGER PRIMARY KEY,
			file_name TEXT,
			operation TEXT,
			size_in_bytes INTEGER,
			error TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, err
	}

	return &transcodeHistory{db: db}, nil
}

func (h *transcodeHistory) Add(ctx context.Context, fileName, operation string, sizeInBytes int64, errText string) error {
	stmt, err := h.db.PrepareContext(ctx, "INSERT INTO transcode_history (file_name, operation, size_in_bytes, error) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, fileName, operation, sizeInBytes, errText)
	if err != nil {
		return err
	}

	return nil
}

func (h *transcodeHistory) List(ctx context.Context, limit, offset int) (Result, error) {
	rows, err := h.db.QueryContext(
		ctx,
		"SELECT id, file_name, operation, size_in_bytes, error, created_at FROM transcode_history ORDER BY created_at DESC LIMIT ? OFFSET ?",
		limit,
		offset,
	)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	entries := make([]entry, 0)
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.ID, &e.FileName, &e.Operation, &e.SizeInBytes, &e.Error, &e.CreatedAt); err != nil {
			return Result{}, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return Result{}, err
	}

	var total int
	row := h.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transcode_history")
	if err := row.Scan(&total); err != nil {
		return Result{}, err
	}

	return Result{
		Entries:    entries,
		TotalCount: total,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

func (h *transcodeHistory) Delete(ctx context.Context, id int64) error {
	stmt, err := h.db.PrepareContext(ctx, "DELETE FROM transcode_history WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, id)
	if err != nil {
		return err
	}

	return nil
}
