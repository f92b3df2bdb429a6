package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/db"
	"opsdesk/models"
	"opsdesk/pagination"
)

var AlertFilterFields = []string{"userId", "vehicleId", "status", "severity"}

type AlertRepository struct {
	resource[models.Alert]
}

func NewAlertRepository(d *mongo.Database, bounds pagination.Bounds) *AlertRepository {
	return &AlertRepository{
		resource: newResource[models.Alert](d.Collection(db.CollectionAlerts), AlertFilterFields, pagination.NewestFirst("createdAt"), bounds),
	}
}
