package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string `json:"db_path"`
	DBSizeBytes int64  `json:"db_size_bytes"`
	Keys        int    `json:"keys"`
	ValueBytes  int64  `json:"value_bytes"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	// DB file size
	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(LENGTH(value)), 0), COALESCE(MAX(updated_at), '') FROM kv`).
		Scan(&st.Keys, &st.ValueBytes, &st.UpdatedAt)
	if err != nil {
		return st, err
	}

	return st, nil
}
