package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// ListTimezones returns all timezones ordered by id.
func (r *Repo) ListTimezones(ctx context.Context) ([]*domain.Timezone, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, name_short, utc_offset FROM timezones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list timezones: %w", err)
	}

	zones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Timezone, error) {
		var tz domain.Timezone
		err := row.Scan(&tz.ID, &tz.Name, &tz.NameShort, &tz.Offset)
		return &tz, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan timezones: %w", err)
	}
	return zones, nil
}

// GetTimezone returns one timezone by id.
func (r *Repo) GetTimezone(ctx context.Context, id int) (*domain.Timezone, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var tz domain.Timezone
	err := q.QueryRow(ctx,
		`SELECT id, name, name_short, utc_offset FROM timezones WHERE id = $1`, id,
	).Scan(&tz.ID, &tz.Name, &tz.NameShort, &tz.Offset)
	if err != nil {
		return nil, postgres.MapError(err, "timezone", id)
	}
	return &tz, nil
}

// UpsertTimezones writes the timezone reference table in one batch.
// Existing ids are overwritten.
func (r *Repo) UpsertTimezones(ctx context.Context, zones []domain.Timezone) (int, error) {
	if len(zones) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, tz := range zones {
		batch.Queue(
			`INSERT INTO timezones (id, name, name_short, utc_offset) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, name_short = EXCLUDED.name_short, utc_offset = EXCLUDED.utc_offset`,
			tz.ID, tz.Name, tz.NameShort, tz.Offset,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range zones {
		if _, err := br.Exec(); err != nil {
			return i, postgres.MapError(err, "timezone", zones[i].ID)
		}
	}
	return len(zones), nil
}
