package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/db"
	"opsdesk/models"
	"opsdesk/pagination"
)

var PartnerFilterFields = []string{"status", "tier", "region"}

type PartnerRepository struct {
	resource[models.Partner]
}

func NewPartnerRepository(d *mongo.Database, bounds pagination.Bounds) *PartnerRepository {
	return &PartnerRepository{
		resource: newResource[models.Partner](d.Collection(db.CollectionPartners), PartnerFilterFields, pagination.NewestFirst("createdAt"), bounds),
	}
}
