package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/storefront-labs/admin-console/configs"
	"github.com/storefront-labs/admin-console/internal/application/favorites"
	"github.com/storefront-labs/admin-console/internal/application/queryclient"
	"github.com/storefront-labs/admin-console/internal/application/services"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/ports"
	"github.com/storefront-labs/admin-console/internal/infrastructure/health"
	"github.com/storefront-labs/admin-console/internal/infrastructure/httpserver"
	"github.com/storefront-labs/admin-console/internal/infrastructure/restclient"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting admin console gateway...")

	// Backend client and entity API modules
	client := restclient.NewClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout, logger)
	productAPI := restclient.NewProductAPI(client, logger)
	userAPI := restclient.NewUserAPI(client, logger)

	// Query cache (one per process, shared by every read path)
	cache := queryclient.NewClient(query.Policy{
		FreshFor:     cfg.Query.FreshFor,
		RetainFor:    cfg.Query.RetainFor,
		RetryCount:   cfg.Query.RetryCount,
		ReapInterval: cfg.Query.ReapInterval,
	}, logger)
	defer cache.Close()

	// Session-scoped favorites set
	favoritesStore := favorites.NewStore()

	// Wire services
	productService := services.NewProductService(productAPI, cache, logger)
	userService := services.NewUserService(userAPI, cache, logger)

	hcSlice := []ports.HealthChecker{health.NewBackendHealthChecker(cfg.Backend.BaseURL)}

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	deps := httpserver.ServerDeps{
		ProductService: productService,
		UserService:    userService,
		Favorites:      favoritesStore,
		HealthCheckers: hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine so shutdown signals are handled
	go func() {
		if err := server.Start(); err != nil {
			logger.Info("Server stopped:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
