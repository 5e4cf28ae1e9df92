package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/logger"
)

// IAuditLogRepository defines the interface for audit log database operations
type IAuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, offset, limit uint64) ([]*models.AuditLog, int64, error)
}

// AuditLogRepository handles audit log database operations
type AuditLogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create appends an audit entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	sql, args, err := r.sb.Insert("audit_logs").
		Columns("action", "entity", "entity_id", "actor_id", "details").
		Values(entry.Action, entry.Entity, entry.EntityID, entry.ActorID, entry.Details).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create audit log SQL")
		return fmt.Errorf("failed to build create audit log query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		logger.Error().Err(err).Str("entity", entry.Entity).Msg("Error executing create audit log query")
		return fmt.Errorf("error creating audit log: %w", err)
	}

	return nil
}

// List returns one page of audit entries, newest first, with the total entry count
func (r *AuditLogRepository) List(ctx context.Context, offset, limit uint64) ([]*models.AuditLog, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("audit_logs").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count audit logs SQL")
		return nil, 0, fmt.Errorf("failed to build count audit logs query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting audit logs")
		return nil, 0, fmt.Errorf("error counting audit logs: %w", err)
	}

	sql, args, err := r.sb.Select("id", "action", "entity", "entity_id", "actor_id", "details", "created_at").
		From("audit_logs").
		OrderBy("created_at DESC", "id DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list audit logs SQL")
		return nil, 0, fmt.Errorf("failed to build list audit logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list audit logs query")
		return nil, 0, fmt.Errorf("error querying audit logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.AuditLog{}
	for rows.Next() {
		l := &models.AuditLog{}
		if err := rows.Scan(&l.ID, &l.Action, &l.Entity, &l.EntityID, &l.ActorID, &l.Details, &l.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning audit log row")
			return nil, 0, fmt.Errorf("error scanning audit log row: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating audit log rows")
		return nil, 0, fmt.Errorf("error iterating audit log rows: %w", err)
	}

	return logs, total, nil
}
