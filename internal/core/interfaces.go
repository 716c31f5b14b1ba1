package core

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/models"
)

// UserService holds the business rules for user accounts.
type UserService interface {
	// Create registers a new user. Returns ErrUserExists when the email is
	// already taken.
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

// ListingService holds the business rules for pet listings, including the
// ownership checks on mutation.
type ListingService interface {
	// List returns listings newest-first, optionally capped at limit.
	List(ctx context.Context, limit int64) ([]models.Listing, error)
	// Get fetches one listing by its hex id.
	Get(ctx context.Context, id string) (*models.Listing, error)
	// ByCategory returns listings matching the category, case-insensitively
	// and exactly.
	ByCategory(ctx context.Context, category string) ([]models.Listing, error)
	// Create inserts a listing and returns its assigned id.
	Create(ctx context.Context, req models.CreateListingRequest) (primitive.ObjectID, error)
	// OwnedBy returns the listings owned by email. The email must equal the
	// verified identity's email or ErrEmailMismatch is returned.
	OwnedBy(ctx context.Context, identity auth.Identity, email string) ([]models.Listing, error)
	// Update applies a partial update to a listing the identity owns and
	// returns the post-update record. Any caller-supplied _id is discarded.
	Update(ctx context.Context, identity auth.Identity, id string, fields map[string]interface{}) (*models.Listing, error)
	// Delete removes a listing the identity owns.
	Delete(ctx context.Context, identity auth.Identity, id string) error
}

// OrderService holds the business rules for orders.
type OrderService interface {
	// Create places an order with server-assigned status and creation time,
	// returning the assigned id.
	Create(ctx context.Context, req models.CreateOrderRequest) (primitive.ObjectID, error)
	// ListFor returns all orders placed by the verified identity.
	ListFor(ctx context.Context, identity auth.Identity) ([]models.Order, error)
}
