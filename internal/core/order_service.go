package core

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/db"
	"pawmart-backend-go/internal/models"
)

// orderService implements the OrderService interface.
type orderService struct {
	orderRepo db.OrderRepository
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo db.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// Create places a new order. Status and creation time are assigned here, not
// taken from the request. Duplicate orders are not rejected.
func (s *orderService) Create(ctx context.Context, req models.CreateOrderRequest) (primitive.ObjectID, error) {
	order := &models.Order{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		BuyerName:       req.BuyerName,
		Email:           req.Email,
		Quantity:        req.Quantity,
		Price:           req.Price,
		Address:         req.Address,
		Phone:           req.Phone,
		Date:            req.Date,
		AdditionalNotes: req.AdditionalNotes,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	id, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

// ListFor returns the verified identity's own orders. The query filter is
// identity-scoped server-side, so no further ownership check is needed.
func (s *orderService) ListFor(ctx context.Context, identity auth.Identity) ([]models.Order, error) {
	return s.orderRepo.FindByEmail(ctx, identity.Email)
}
