package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/studentms/internal/app/models"
)

type AuditLogRepository struct{ mock.Mock }

func (m *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *AuditLogRepository) List(ctx context.Context, offset, limit uint64) ([]*models.AuditLog, int64, error) {
	args := m.Called(ctx, offset, limit)
	var logs []*models.AuditLog
	if v := args.Get(0); v != nil {
		logs = v.([]*models.AuditLog)
	}
	return logs, args.Get(1).(int64), args.Error(2)
}
