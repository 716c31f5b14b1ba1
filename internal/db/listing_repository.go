package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart-backend-go/internal/models"
)

// mongoListingRepository implements ListingRepository on the petListings
// collection.
type mongoListingRepository struct {
	store *Mongo
}

// NewMongoListingRepository creates a ListingRepository backed by the given
// store.
func NewMongoListingRepository(store *Mongo) ListingRepository {
	return &mongoListingRepository{store: store}
}

func (r *mongoListingRepository) List(ctx context.Context, limit int64) ([]models.Listing, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return decodeListings(ctx, cur)
}

func (r *mongoListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return nil, err
	}
	var listing models.Listing
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("listing %s: %w", id.Hex(), ErrNoDocument)
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return &listing, nil
}

func (r *mongoListingRepository) FindByCategory(ctx context.Context, category string) ([]models.Listing, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return nil, err
	}
	// Anchored so "dog" matches "Dog" but never "dogs".
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(category) + "$", Options: "i"}
	cur, err := coll.Find(ctx, bson.M{"category": pattern})
	if err != nil {
		return nil, fmt.Errorf("find listings by category: %w", err)
	}
	return decodeListings(ctx, cur)
}

func (r *mongoListingRepository) FindByEmail(ctx context.Context, email string) ([]models.Listing, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find listings by email: %w", err)
	}
	return decodeListings(ctx, cur)
}

func (r *mongoListingRepository) Insert(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := coll.InsertOne(ctx, listing)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert listing: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *mongoListingRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return 0, err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("update listing: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoListingRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	coll, err := r.store.collection(listingsCollection)
	if err != nil {
		return 0, err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete listing: %w", err)
	}
	return res.DeletedCount, nil
}

func decodeListings(ctx context.Context, cur *mongo.Cursor) ([]models.Listing, error) {
	listings := []models.Listing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return listings, nil
}
