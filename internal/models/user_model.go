package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a marketplace account. Users are created on first
// registration and are immutable afterwards; email is the unique key.
type User struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	PhotoURL    string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
