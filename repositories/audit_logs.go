package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/db"
	"opsdesk/models"
	"opsdesk/pagination"
)

var AuditLogFilterFields = []string{"userId", "action", "resource"}

// AuditLogRepository is read-only; audit entries are written elsewhere.
type AuditLogRepository struct {
	resource[models.AuditLog]
}

func NewAuditLogRepository(d *mongo.Database, bounds pagination.Bounds) *AuditLogRepository {
	return &AuditLogRepository{
		resource: newResource[models.AuditLog](d.Collection(db.CollectionAuditLogs), AuditLogFilterFields, pagination.NewestFirst("timestamp"), bounds),
	}
}
