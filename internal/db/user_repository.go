package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pawmart-backend-go/internal/models"
)

// mongoUserRepository implements UserRepository on the users collection.
type mongoUserRepository struct {
	store *Mongo
}

// NewMongoUserRepository creates a UserRepository backed by the given store.
func NewMongoUserRepository(store *Mongo) UserRepository {
	return &mongoUserRepository{store: store}
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	coll, err := r.store.collection(usersCollection)
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("user %q: %w", user.Email, ErrDuplicateKey)
		}
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	coll, err := r.store.collection(usersCollection)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %q: %w", email, ErrNoDocument)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
