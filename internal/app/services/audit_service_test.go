package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/mocks"
)

func TestAuditService_RecordSurvivesCancellationAndErrors(t *testing.T) {
	repo := new(mocks.AuditLogRepository)
	svc := NewAuditService(repo)

	var saved *models.AuditLog
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(0).(context.Context).Err())
			saved = args.Get(1).(*models.AuditLog)
		}).
		Return(errors.New("insert failed"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Record(ctx, models.AuditActionDelete, "student", 4, 0, "")

	require.NotNil(t, saved)
	assert.Equal(t, models.AuditActionDelete, saved.Action)
	require.NotNil(t, saved.EntityID)
	assert.Equal(t, int64(4), *saved.EntityID)
	assert.Nil(t, saved.ActorID)
}

func TestAuditService_List(t *testing.T) {
	repo := new(mocks.AuditLogRepository)
	svc := NewAuditService(repo)
	ctx := context.Background()

	logs := []*models.AuditLog{{ID: 2}, {ID: 1}}
	repo.On("List", ctx, uint64(10), uint64(10)).Return(logs, int64(12), nil)

	resp, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, logs, resp.Logs)
	assert.Equal(t, int64(12), resp.Pagination.TotalItems)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}
