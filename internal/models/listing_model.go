package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Listing is a pet listing document. The Email field is set once at creation
// and is the sole authorization key for updating or deleting the listing.
type Listing struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Location    string             `json:"location" bson:"location"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Date        string             `json:"date" bson:"date"`
	Email       string             `json:"email" bson:"email"`
}
