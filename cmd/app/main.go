package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sonofaryeetey/tailorflow/internal/api"
	"github.com/sonofaryeetey/tailorflow/internal/config"
	"github.com/sonofaryeetey/tailorflow/internal/controller"
	"github.com/sonofaryeetey/tailorflow/internal/database"
	"github.com/sonofaryeetey/tailorflow/internal/objectstore"
	"github.com/sonofaryeetey/tailorflow/internal/service"
)

// @title TailorFlow API
// @version 1.0
// @description Client and garment-order management for a bespoke tailoring shop.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err == nil {
		slog.Info("loaded .env")
	}

	cfg := config.Load()
	ctx := context.Background()

	// Persistence gateway. Without DATABASE_URL the app still boots against
	// inert no-op repositories.
	var clientRepo service.ClientRepository = database.NewNoopClientRepo()
	var itemRepo service.ItemRepository = database.NewNoopItemRepo()
	if cfg.DatabaseURL != "" {
		if err := database.ApplyMigrations(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		clientRepo = database.NewClientRepo(pool)
		itemRepo = database.NewItemRepo(pool)
	} else {
		slog.Warn("DATABASE_URL not set, persistence gateway disabled")
	}

	// Object storage for item photos.
	var objects objectstore.Store = objectstore.NewNoop()
	if cfg.ObjectStore.Bucket != "" {
		store, err := objectstore.NewS3(ctx, cfg.ObjectStore)
		if err != nil {
			slog.Error("failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		objects = store
	} else {
		slog.Warn("TAILORFLOW_S3_BUCKET not set, object storage disabled")
	}

	clientSvc := service.NewClientSvc(clientRepo, itemRepo)
	itemSvc := service.NewItemSvc(itemRepo, objects)
	intakeSvc := service.NewIntakeSvc(clientRepo, itemRepo, objects, cfg.SessionTTL)

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	intakeSvc.StartSweeper(sweepCtx, 10*time.Minute)

	r := api.InitRoutes(api.Controllers{
		Client: controller.NewClientController(clientSvc, itemSvc),
		Item:   controller.NewItemController(itemSvc),
		Intake: controller.NewIntakeController(intakeSvc),
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}
