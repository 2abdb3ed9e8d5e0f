// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const auditColumns = `id, user_id, entity_type, entity_id, action, changes, created_at`

// Log appends an audit record. Zero ID and CreatedAt are filled by the database.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err = q.Exec(ctx,
		`INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))`,
		id, record.UserID, string(record.EntityType), record.EntityID, string(record.Action), changesJSON, nullTime(record),
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", id)
	}
	return nil
}

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+auditColumns+` FROM audit_log
		 WHERE entity_type = $1 AND entity_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		string(entityType), entityID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scan audit_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.CollectableRow) (domain.AuditRecord, error) {
	var (
		rec     domain.AuditRecord
		entity  string
		action  string
		changes []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entity, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entity)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}

func nullTime(record domain.AuditRecord) any {
	if record.CreatedAt.IsZero() {
		return nil
	}
	return record.CreatedAt
}
