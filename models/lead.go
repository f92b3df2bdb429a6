package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead is a CRM sales lead.
// Collection: leads
type Lead struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Status         string             `bson:"status" json:"status"`
	Source         string             `bson:"source" json:"source"`
	AssignedTo     string             `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	EstimatedValue float64            `bson:"estimatedValue,omitempty" json:"estimatedValue,omitempty"`
}
