package audit

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps records in PostgreSQL.
type PostgresStore struct {
	pool   *pgxpool.Pool
	schema string
}

type PostgresOption func(*PostgresStore) error

// WithSchema sets the schema holding pw_checks (default: "public").
func WithSchema(schema string) PostgresOption {
	return func(s *PostgresStore) error {
		schema = strings.TrimSpace(schema)
		if schema == "" {
			return ErrInvalidInput
		}
		s.schema = schema
		return nil
	}
}

func NewPostgresStore(pool *pgxpool.Pool, opts ...PostgresOption) (*PostgresStore, error) {
	st := &PostgresStore{pool: pool, schema: "public"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(st); err != nil {
			return nil, err
		}
	}
	if st.pool == nil {
		return nil, ErrInvalidInput
	}
	return st, nil
}

// Migrate creates the schema and table if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `CREATE SCHEMA IF NOT EXISTS `+pgx.Identifier{s.schema}.Sanitize()); err != nil {
		return err
	}

	checks := s.table()
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS `+checks+` (
		     id     TEXT PRIMARY KEY,
		     ts     TIMESTAMPTZ NOT NULL,
		     masked TEXT NOT NULL,
		     score  INTEGER NOT NULL,
		     label  TEXT NOT NULL
		   )`)
	return err
}

func (s *PostgresStore) Insert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(rec.ID) == "" {
		return ErrInvalidInput
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO `+s.table()+` (id, ts, masked, score, label) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID,
		rec.Ts,
		rec.Masked,
		rec.Score,
		rec.Label,
	)
	return err
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, ts, masked, score, label
		   FROM `+s.table()+`
		  ORDER BY id DESC
		  LIMIT $1`,
		ClampLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var ts time.Time
		if err := rows.Scan(&rec.ID, &ts, &rec.Masked, &rec.Score, &rec.Label); err != nil {
			return nil, err
		}
		rec.Ts = ts.UTC()
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *PostgresStore) table() string {
	return pgx.Identifier{s.schema, "pw_checks"}.Sanitize()
}
