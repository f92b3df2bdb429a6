package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/db"
	"opsdesk/models"
	"opsdesk/pagination"
)

var LeadFilterFields = []string{"status", "source", "assignedTo"}

type LeadRepository struct {
	resource[models.Lead]
}

func NewLeadRepository(d *mongo.Database, bounds pagination.Bounds) *LeadRepository {
	return &LeadRepository{
		resource: newResource[models.Lead](d.Collection(db.CollectionLeads), LeadFilterFields, pagination.NewestFirst("createdAt"), bounds),
	}
}
