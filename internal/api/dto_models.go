package api

import "pawmart-backend-go/internal/models"

// ErrorResponse is the JSON body for every error status: a message and
// nothing else. Clients cannot distinguish error subtypes within a status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the body for success responses that carry no record.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateUserResponse echoes the newly registered user.
type CreateUserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// CreateListingResponse carries the store-assigned listing id.
type CreateListingResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// UpdateListingResponse carries the post-update listing record.
type UpdateListingResponse struct {
	Message        string          `json:"message"`
	UpdatedListing *models.Listing `json:"updatedListing"`
}

// CreateOrderResponse carries the store-assigned order id.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
