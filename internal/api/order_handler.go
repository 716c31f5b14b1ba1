package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/core"
	"pawmart-backend-go/internal/middleware"
	"pawmart-backend-go/internal/models"
)

// OrderHandler handles API endpoints related to orders.
type OrderHandler struct {
	orderService core.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os core.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: os, logger: logger}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Missing required fields"})
		return
	}

	id, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, CreateOrderResponse{Message: "Order placed successfully", OrderID: id.Hex()})
}

// List handles GET /orders, returning only the caller's own orders.
func (h *OrderHandler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
		return
	}

	orders, err := h.orderService.ListFor(c.Request.Context(), identity)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
