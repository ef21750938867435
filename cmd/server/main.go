package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/kaanhvc/catalog-api/internal/config"
	"github.com/kaanhvc/catalog-api/internal/domain"
	"github.com/kaanhvc/catalog-api/internal/events"
	"github.com/kaanhvc/catalog-api/internal/repository"
	"github.com/kaanhvc/catalog-api/internal/service"
	httpTransport "github.com/kaanhvc/catalog-api/internal/transport/http"
	websocketTransport "github.com/kaanhvc/catalog-api/internal/transport/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hclog.Default().Error("Unable to parse configuration", "error", err)
		os.Exit(1)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "catalog-api",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Connect to the store and create the unique indexes
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := repository.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	connectCancel()
	if err != nil {
		logger.Error("Unable to connect to MongoDB", "uri", cfg.MongoURI, "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = repository.EnsureIndexes(indexCtx, db)
	indexCancel()
	if err != nil {
		logger.Error("Unable to create indexes", "error", err)
		os.Exit(1)
	}

	eventBus := events.NewBus()

	categoryRepo := repository.NewMongoCategoryRepository(db)
	productRepo := repository.NewMongoProductRepository(db)

	categoryService := service.NewCategoryService(categoryRepo, eventBus, logger.Named("category-service"))
	productService := service.NewProductService(productRepo, categoryRepo, eventBus, logger.Named("product-service"))

	validator := domain.NewValidation()
	responder := httpTransport.NewResponder(logger.Named("http-handler"), !cfg.IsProduction())

	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		Categories: httpTransport.NewCategoryHandler(categoryService, validator, responder, logger.Named("http-handler")),
		Products:   httpTransport.NewProductHandler(productService, validator, responder, logger.Named("http-handler")),
		WebSocket:  websocketTransport.NewHandler(logger.Named("websocket-handler"), eventBus),
		Responder:  responder,
		Logger:     logger,
		StorePing: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
		SwaggerPath: "swagger.yaml",
	})

	server := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "bind_address", cfg.BindAddress, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down server", "signal", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	eventBus.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", "error", err)
	}
}
