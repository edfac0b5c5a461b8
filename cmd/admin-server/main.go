// cmd/admin-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cravio-admin/internal/common/auth"
	"cravio-admin/internal/common/config"
	"cravio-admin/internal/common/database"
	"cravio-admin/internal/common/graphql"
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/observability"
	"cravio-admin/internal/dataapi"
	"cravio-admin/internal/pages/dashboard"
	"cravio-admin/internal/pages/delivery"
	"cravio-admin/internal/pages/dishes"
	"cravio-admin/internal/pages/orders"
	"cravio-admin/internal/pages/restaurants"
	"cravio-admin/internal/pages/reviews"
	"cravio-admin/internal/pages/settings"
	"cravio-admin/internal/pages/users"
	"cravio-admin/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}
	return err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting admin server",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis initialization")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Data API and identity clients ---
	gqlClient := graphql.NewClient(cfg.Hasura, log, obs)
	api := dataapi.New(gqlClient)

	identity := auth.NewIdentityClient(cfg.Identity)
	sessions := auth.NewSessionManager(identity, redisClient,
		time.Duration(cfg.Session.TTL)*time.Second, log)

	// --- Pages ---
	ordersPage := orders.NewPage(api, log)
	restaurantsPage := restaurants.NewPage(api, log)
	dishesPage := dishes.NewPage(api, log)
	deliveryPage := delivery.NewPage(api, log)
	reviewsPage := reviews.NewPage(api, cfg.Moderation, log)
	usersPage := users.NewPage(api, log)
	settingsPage := settings.NewPage(api, log)
	dashboardPage := dashboard.NewPage(ordersPage, usersPage, restaurantsPage, deliveryPage, log)

	srv := server.New(*cfg, log, sessions,
		orders.NewHandler(ordersPage),
		restaurants.NewHandler(restaurantsPage),
		dishes.NewHandler(dishesPage),
		delivery.NewHandler(deliveryPage),
		reviews.NewHandler(reviewsPage),
		users.NewHandler(usersPage),
		settings.NewHandler(settingsPage),
		dashboard.NewHandler(dashboardPage),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Error("http server failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}
	zapLog.Info("Admin server stopped gracefully")
}
