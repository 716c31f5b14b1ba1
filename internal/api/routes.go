package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/core"
	"pawmart-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// per-route auth middleware. Global middleware (logging, recovery, CORS) is
// expected to be applied to the router before this is called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	userService core.UserService,
	listingService core.ListingService,
	orderService core.OrderService,
) {
	userHandler := NewUserHandler(userService, logger)
	listingHandler := NewListingHandler(listingService, logger)
	orderHandler := NewOrderHandler(orderService, logger)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "PawMart server is running")
	})

	// Public browse and registration endpoints.
	router.GET("/listings", listingHandler.List)
	router.GET("/listings/:id", listingHandler.Get)
	router.GET("/category-filtered-product/:category", listingHandler.ByCategory)
	router.POST("/users", userHandler.Create)

	// Everything below requires a verified bearer token.
	router.POST("/add-listing", authMW.RequireAuth(), listingHandler.Create)
	router.GET("/user/listings/:email", authMW.RequireAuth(), listingHandler.OwnedBy)
	router.PUT("/listings/:id", authMW.RequireAuth(), listingHandler.Update)
	router.DELETE("/listings/:id", authMW.RequireAuth(), listingHandler.Delete)
	router.POST("/orders", authMW.RequireAuth(), orderHandler.Create)
	router.GET("/orders", authMW.RequireAuth(), orderHandler.List)

	logger.Info("API routes configured")
}
