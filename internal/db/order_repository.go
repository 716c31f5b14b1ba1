package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/models"
)

// mongoOrderRepository implements OrderRepository on the orders collection.
type mongoOrderRepository struct {
	store *Mongo
}

// NewMongoOrderRepository creates an OrderRepository backed by the given store.
func NewMongoOrderRepository(store *Mongo) OrderRepository {
	return &mongoOrderRepository{store: store}
}

func (r *mongoOrderRepository) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	coll, err := r.store.collection(ordersCollection)
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := coll.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert order: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *mongoOrderRepository) FindByEmail(ctx context.Context, email string) ([]models.Order, error) {
	coll, err := r.store.collection(ordersCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find orders by email: %w", err)
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
