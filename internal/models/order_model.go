package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the status stamped on every new order. There is no
// seller-side order management, so no other status is written by this service.
const OrderStatusPending = "pending"

// Order is a buyer's order for a listing. Email scopes visibility: a user
// only ever sees orders carrying their own email.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID       string             `json:"productId" bson:"productId"`
	ProductName     string             `json:"productName,omitempty" bson:"productName,omitempty"`
	BuyerName       string             `json:"buyerName" bson:"buyerName"`
	Email           string             `json:"email" bson:"email"`
	Quantity        int                `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price           float64            `json:"price,omitempty" bson:"price,omitempty"`
	Address         string             `json:"address" bson:"address"`
	Phone           string             `json:"phone" bson:"phone"`
	Date            string             `json:"date,omitempty" bson:"date,omitempty"`
	AdditionalNotes string             `json:"additionalNotes,omitempty" bson:"additionalNotes,omitempty"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}
