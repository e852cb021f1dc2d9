package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/markethub/marketplace-service/internal/api/http"
	"github.com/markethub/marketplace-service/internal/api/http/handlers"
	"github.com/markethub/marketplace-service/internal/auth"
	"github.com/markethub/marketplace-service/internal/billing"
	"github.com/markethub/marketplace-service/internal/config"
	"github.com/markethub/marketplace-service/internal/events"
	"github.com/markethub/marketplace-service/internal/observability"
	"github.com/markethub/marketplace-service/internal/persistence"
	"github.com/markethub/marketplace-service/internal/repository"
	"github.com/markethub/marketplace-service/internal/service"
	"github.com/markethub/marketplace-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	userRepo := repository.NewUserRepository(mongo.Collection(persistence.CollectionUsers))
	productRepo := repository.NewProductRepository(mongo.Collection(persistence.CollectionProducts))
	reviewRepo := repository.NewReviewRepository(mongo.Collection(persistence.CollectionReviews))
	couponRepo := repository.NewCouponRepository(mongo.Collection(persistence.CollectionCoupons))
	paymentRepo := repository.NewPaymentRepository(mongo.Collection(persistence.CollectionPayments))

	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not provided; payment intents disabled")
	}
	gateway := billing.NewStripeGateway(cfg.Stripe.SecretKey)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, dispatcher)
	reviewService := service.NewReviewService(reviewRepo)
	couponService := service.NewCouponService(couponRepo)
	paymentService := service.NewPaymentService(paymentRepo, gateway)
	statsService := service.NewStatsService(userRepo, productRepo, reviewRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo),
		Token:          handlers.NewTokenHandler(tokenManager),
		Users:          handlers.NewUsersHandler(userService),
		Products:       handlers.NewProductsHandler(productService),
		Reviews:        handlers.NewReviewsHandler(reviewService),
		Coupons:        handlers.NewCouponsHandler(couponService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Stats:          handlers.NewStatsHandler(statsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
