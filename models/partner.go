package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner is a reseller or integration partner.
// Collection: partners
type Partner struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
	Name         string             `bson:"name" json:"name"`
	ContactEmail string             `bson:"contactEmail" json:"contactEmail"`
	Status       string             `bson:"status" json:"status"`
	Tier         string             `bson:"tier" json:"tier"`
	Region       string             `bson:"region" json:"region"`
}
