package services

import (
	"context"

	"opsdesk/models"
	"opsdesk/pagination"
)

type AuditService struct {
	logs Lister[models.AuditLog]
}

func NewAuditService(logs Lister[models.AuditLog]) *AuditService {
	return &AuditService{logs: logs}
}

func (s *AuditService) ListLogs(ctx context.Context, raw map[string]string) (pagination.Result[models.AuditLog], error) {
	return list(ctx, "list audit logs", s.logs, raw)
}
