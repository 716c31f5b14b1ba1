package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/api"
	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/config"
	"pawmart-backend-go/internal/core"
	"pawmart-backend-go/internal/db"
	"pawmart-backend-go/internal/middleware"
)

func main() {
	// Local development convenience; in deployment the environment is the
	// source of truth and no .env file exists.
	_ = godotenv.Load()

	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load application configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if strings.ToLower(appConfig.GinMode) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// The store handle exists immediately; the connection is established in
	// the background so the server can come up while the bind is in flight.
	// Until Connect completes, store-backed endpoints answer 503.
	store := db.NewMongo(appConfig.MongoURI, appConfig.MongoDatabase)
	go func() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Connect(connectCtx); err != nil {
			zapLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		zapLogger.Info("MongoDB connected", zap.String("database", appConfig.MongoDatabase))
	}()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	verifier, err := auth.NewFirebaseVerifier(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase token verifier", zap.Error(err))
	}
	zapLogger.Info("Firebase token verifier initialized")

	userRepo := db.NewMongoUserRepository(store)
	listingRepo := db.NewMongoListingRepository(store)
	orderRepo := db.NewMongoOrderRepository(store)

	userService := core.NewUserService(userRepo)
	listingService := core.NewListingService(listingRepo)
	orderService := core.NewOrderService(orderRepo)

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	authMW := middleware.NewAuthMiddleware(verifier, zapLogger)
	api.SetupRoutes(router, zapLogger, authMW, userService, listingService, orderService)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("address", httpServer.Addr),
		zap.String("ginMode", gin.Mode()),
	)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		zapLogger.Error("error disconnecting from MongoDB", zap.Error(err))
	}

	zapLogger.Info("server exited")
}
