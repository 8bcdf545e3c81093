package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/hatchdotlol/passcheck/pkg/audit"
	"github.com/hatchdotlol/passcheck/pkg/db"
	"github.com/hatchdotlol/passcheck/pkg/metrics"
	"github.com/hatchdotlol/passcheck/pkg/util"
)

// auditLog owns the recorder and the backend handle behind it.
type auditLog struct {
	backend  string
	recorder *audit.Recorder
	closers  []func() error
}

func openAudit(ctx context.Context, cfg util.Config, m *metrics.Metrics, logger *slog.Logger) (*auditLog, error) {
	if cfg.Audit == nil {
		return &auditLog{backend: "off"}, nil
	}

	a := &auditLog{backend: cfg.Audit.Backend}

	var store audit.Store
	switch cfg.Audit.Backend {
	case util.BackendSQLite:
		conn, err := db.OpenSQLite(cfg.Audit.DBPath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)

		if store, err = audit.NewSQLiteStore(conn); err != nil {
			return nil, err
		}

	case util.BackendPostgres:
		pool, err := db.OpenPostgres(ctx, cfg.Audit.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		pg, err := audit.NewPostgresStore(pool, audit.WithSchema(cfg.Audit.Schema))
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrating postgres: %w", err)
		}
		store = pg

	case util.BackendMinio:
		client, err := db.OpenS3(ctx, cfg.Audit.S3)
		if err != nil {
			return nil, err
		}

		if store, err = audit.NewObjectStore(audit.MinioBucket(client, cfg.Audit.S3.Bucket)); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown audit backend %q", cfg.Audit.Backend)
	}

	recorder, err := audit.NewRecorder(store,
		audit.WithMetrics(m),
		audit.WithLogger(logger),
		audit.WithQueueSize(cfg.Audit.QueueSize),
		audit.WithWriteTimeout(cfg.Audit.WriteTimeout),
	)
	if err != nil {
		return nil, err
	}
	a.recorder = recorder

	return a, nil
}

// Close drains the recorder, then releases the backend.
func (a *auditLog) Close(ctx context.Context) error {
	var result error
	if err := a.recorder.Close(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
