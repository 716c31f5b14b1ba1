package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/db"
	"pawmart-backend-go/internal/models"
)

// ErrListingNotFound is returned when a listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ErrInvalidID is returned when an identifier is not a well-formed ObjectID.
var ErrInvalidID = errors.New("invalid id format")

// listingService implements the ListingService interface.
type listingService struct {
	listingRepo db.ListingRepository
}

// NewListingService creates a new ListingService instance.
func NewListingService(listingRepo db.ListingRepository) ListingService {
	return &listingService{listingRepo: listingRepo}
}

func (s *listingService) List(ctx context.Context, limit int64) ([]models.Listing, error) {
	return s.listingRepo.List(ctx, limit)
}

func (s *listingService) Get(ctx context.Context, id string) (*models.Listing, error) {
	oid, err := parseListingID(id)
	if err != nil {
		return nil, err
	}
	listing, err := s.listingRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) ByCategory(ctx context.Context, category string) ([]models.Listing, error) {
	return s.listingRepo.FindByCategory(ctx, category)
}

func (s *listingService) Create(ctx context.Context, req models.CreateListingRequest) (primitive.ObjectID, error) {
	listing := &models.Listing{
		Name:        req.Name,
		Category:    req.Category,
		Price:       float64(req.Price),
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
		Email:       req.Email,
	}
	return s.listingRepo.Insert(ctx, listing)
}

func (s *listingService) OwnedBy(ctx context.Context, identity auth.Identity, email string) ([]models.Listing, error) {
	if email != identity.Email {
		return nil, ErrEmailMismatch
	}
	return s.listingRepo.FindByEmail(ctx, email)
}

// Update applies a partial update to a listing after checking that the
// verified identity owns the stored record. The resource identity is never
// mutable through the payload, so any _id field is dropped before applying.
func (s *listingService) Update(ctx context.Context, identity auth.Identity, id string, fields map[string]interface{}) (*models.Listing, error) {
	oid, err := parseListingID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.listingRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
		}
		return nil, err
	}
	if err := Authorize(identity, existing.Email); err != nil {
		return nil, err
	}

	update := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		update[k] = v
	}

	modified, err := s.listingRepo.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, fmt.Errorf("update listing %s: no documents modified", id)
	}
	return s.listingRepo.FindByID(ctx, oid)
}

// Delete removes a listing after checking that the verified identity owns
// the stored record.
func (s *listingService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	oid, err := parseListingID(id)
	if err != nil {
		return err
	}

	existing, err := s.listingRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return fmt.Errorf("%w: %s", ErrListingNotFound, id)
		}
		return err
	}
	if err := Authorize(identity, existing.Email); err != nil {
		return err
	}

	deleted, err := s.listingRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return fmt.Errorf("delete listing %s: expected 1 document removed, got %d", id, deleted)
	}
	return nil
}

func parseListingID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
