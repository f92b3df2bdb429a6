package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/db"
	"opsdesk/models"
	"opsdesk/pagination"
)

var SalesTemplateFilterFields = []string{"category", "status"}

// SalesTemplateRepository lists templates most recently edited first.
type SalesTemplateRepository struct {
	resource[models.SalesTemplate]
}

func NewSalesTemplateRepository(d *mongo.Database, bounds pagination.Bounds) *SalesTemplateRepository {
	return &SalesTemplateRepository{
		resource: newResource[models.SalesTemplate](d.Collection(db.CollectionSalesTemplates), SalesTemplateFilterFields, pagination.NewestFirst("updatedAt"), bounds),
	}
}
