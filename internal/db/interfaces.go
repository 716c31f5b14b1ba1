package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/models"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	// Insert adds a new user. Returns ErrDuplicateKey when a user with the
	// same email already exists.
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	// FindByEmail retrieves a user by email, or ErrNoDocument.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// ListingRepository defines the interface for listing data storage operations.
type ListingRepository interface {
	// List returns listings sorted by date descending. A positive limit caps
	// the result; zero or negative means unbounded.
	List(ctx context.Context, limit int64) ([]models.Listing, error)
	// FindByID retrieves a listing by id, or ErrNoDocument.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	// FindByCategory returns listings whose category equals the given value,
	// compared case-insensitively.
	FindByCategory(ctx context.Context, category string) ([]models.Listing, error)
	// FindByEmail returns all listings owned by the given email.
	FindByEmail(ctx context.Context, email string) ([]models.Listing, error)
	Insert(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error)
	// Update applies the given fields to the listing and reports how many
	// documents were modified.
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	// Delete removes the listing and reports how many documents were removed.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// OrderRepository defines the interface for order data storage operations.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	// FindByEmail returns all orders placed by the given email.
	FindByEmail(ctx context.Context, email string) ([]models.Order, error)
}
