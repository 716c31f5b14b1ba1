package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/core"
	"pawmart-backend-go/internal/middleware"
	"pawmart-backend-go/internal/models"
)

// ListingHandler handles API endpoints related to pet listings.
type ListingHandler struct {
	listingService core.ListingService
	logger         *zap.Logger
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(ls core.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listingService: ls, logger: logger}
}

// List handles GET /listings. Results are newest-first; an optional `count`
// query caps the result size. A count that fails to parse, or is not
// positive, is ignored.
func (h *ListingHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("count"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	listings, err := h.listingService.List(c.Request.Context(), limit)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Get handles GET /listings/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// ByCategory handles GET /category-filtered-product/:category. Matching is
// case-insensitive and exact.
func (h *ListingHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Category required"})
		return
	}

	listings, err := h.listingService.ByCategory(c.Request.Context(), category)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Create handles POST /add-listing.
func (h *ListingHandler) Create(c *gin.Context) {
	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "All fields are required"})
		return
	}

	id, err := h.listingService.Create(c.Request.Context(), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, CreateListingResponse{Message: "Listing added successfully", ID: id.Hex()})
}

// OwnedBy handles GET /user/listings/:email. The path email must match the
// verified identity.
func (h *ListingHandler) OwnedBy(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
		return
	}

	listings, err := h.listingService.OwnedBy(c.Request.Context(), identity, c.Param("email"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Update handles PUT /listings/:id. The payload is a partial field update;
// ownership is checked against the stored record.
func (h *ListingHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request payload"})
		return
	}

	updated, err := h.listingService.Update(c.Request.Context(), identity, c.Param("id"), fields)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, UpdateListingResponse{Message: "Listing updated successfully", UpdatedListing: updated})
}

// Delete handles DELETE /listings/:id.
func (h *ListingHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Listing deleted successfully"})
}
