package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/config"
	"github.com/heartmarshall/mynetwrk-backend/migrations"
)

// Migration directions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate applies, rolls back or reports the embedded goose migrations.
// Status lines are written to out.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger, direction string, out io.Writer) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	switch direction {
	case MigrateUp:
		return migrateUp(ctx, pool, logger)
	case MigrateDown:
		return migrateDown(ctx, pool, logger)
	case MigrateStatus:
		return migrateStatus(ctx, pool, out)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}

func newMigrator(pool *pgxpool.Pool) (*goose.Provider, func() error, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, db.Close, nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	provider, closeDB, err := newMigrator(pool)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration))
	}
	if len(results) == 0 {
		logger.Info("schema is up to date")
	}
	return nil
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	provider, closeDB, err := newMigrator(pool)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	r, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	logger.Info("migration rolled back",
		slog.Int64("version", r.Source.Version),
		slog.String("path", r.Source.Path),
		slog.Duration("duration", r.Duration))
	return nil
}

func migrateStatus(ctx context.Context, pool *pgxpool.Pool, out io.Writer) error {
	provider, closeDB, err := newMigrator(pool)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(out, "%-6d %-8s %-20s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return nil
}

// schemaReporter reports the applied goose version next to the newest
// embedded migration.
type schemaReporter struct {
	provider *goose.Provider
	latest   int64
}

func newSchemaReporter(pool *pgxpool.Pool) (*schemaReporter, func() error, error) {
	provider, closeDB, err := newMigrator(pool)
	if err != nil {
		return nil, nil, err
	}
	r := &schemaReporter{provider: provider}
	if sources := provider.ListSources(); len(sources) > 0 {
		r.latest = sources[len(sources)-1].Version
	}
	return r, closeDB, nil
}

// SchemaVersion returns the applied and the newest embedded migration version.
func (r *schemaReporter) SchemaVersion(ctx context.Context) (current, latest int64, err error) {
	current, err = r.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, r.latest, fmt.Errorf("goose db version: %w", err)
	}
	return current, r.latest, nil
}
