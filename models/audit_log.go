package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog is written by the audit collaborator; this service only reads it.
// Collection: audit_logs
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	UserID     string             `bson:"userId" json:"userId"`
	Action     string             `bson:"action" json:"action"`
	Resource   string             `bson:"resource" json:"resource"`
	ResourceID string             `bson:"resourceId,omitempty" json:"resourceId,omitempty"`
	IPAddress  string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent  string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Details    map[string]any     `bson:"details,omitempty" json:"details,omitempty"`
}
