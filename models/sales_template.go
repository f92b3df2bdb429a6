package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesTemplate is a reusable sales email/message template.
// Collection: sales_templates
type SalesTemplate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Status    string             `bson:"status" json:"status"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	CreatedBy string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}
