package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/helpers"
	"github.com/yigit/studentms/internal/pkg/logger"
)

// AuditService records and lists audit trail entries
type AuditService interface {
	Record(ctx context.Context, action models.AuditAction, entity string, entityID, actorID int64, details string)
	List(ctx context.Context, page, size int) (*dto.AuditLogListResponse, error)
}

type auditServiceImpl struct {
	auditRepo repositories.IAuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.IAuditLogRepository) AuditService {
	return &auditServiceImpl{auditRepo: auditRepo}
}

// Record appends an entry. Failures are logged and never returned to the caller.
func (s *auditServiceImpl) Record(ctx context.Context, action models.AuditAction, entity string, entityID, actorID int64, details string) {
	entry := &models.AuditLog{
		Action:  action,
		Entity:  entity,
		Details: details,
	}
	if entityID > 0 {
		entry.EntityID = &entityID
	}
	if actorID > 0 {
		entry.ActorID = &actorID
	}

	if err := s.auditRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		logger.Warn().Err(err).
			Str("action", string(action)).
			Str("entity", entity).
			Int64("entityID", entityID).
			Msg("Failed to record audit log")
	}
}

// List returns one page of audit entries, newest first
func (s *auditServiceImpl) List(ctx context.Context, page, size int) (*dto.AuditLogListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	logs, total, err := s.auditRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving audit logs: %w", err)
	}

	return &dto.AuditLogListResponse{
		Logs:       logs,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
