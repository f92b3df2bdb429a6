package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert is a fleet telemetry alert raised from a vehicle's OBD data.
// Collection: alerts
type Alert struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UserID     string             `bson:"userId" json:"userId"`
	VehicleID  string             `bson:"vehicleId" json:"vehicleId"`
	Type       string             `bson:"type" json:"type"`
	Severity   string             `bson:"severity" json:"severity"`
	Status     string             `bson:"status" json:"status"`
	Message    string             `bson:"message" json:"message"`
	DTCCodes   []string           `bson:"dtcCodes,omitempty" json:"dtcCodes,omitempty"`
	ResolvedAt *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}
