package audit

import (
	"context"
	"database/sql"
	"time"
)

// SQLiteStore keeps records in the pw_checks table of a migrated SQLite
// database (see db.OpenSQLite).
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, ErrInvalidInput
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, rec Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO pw_checks (id, ts, masked, score, label) VALUES (?, ?, ?, ?, ?)",
		rec.ID,
		rec.Ts.UnixMilli(),
		rec.Masked,
		rec.Score,
		rec.Label,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, ts, masked, score, label FROM pw_checks ORDER BY id DESC LIMIT ?",
		ClampLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var ts int64
		if err := rows.Scan(&rec.ID, &ts, &rec.Masked, &rec.Score, &rec.Label); err != nil {
			return nil, err
		}
		rec.Ts = time.UnixMilli(ts).UTC()
		records = append(records, rec)
	}

	return records, rows.Err()
}
