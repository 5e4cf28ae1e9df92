package dto

import "github.com/yigit/studentms/internal/app/models"

// AuditLogListResponse is one page of audit log entries
type AuditLogListResponse struct {
	Logs       []*models.AuditLog `json:"logs"`
	Pagination PaginationInfo     `json:"pagination"`
}
