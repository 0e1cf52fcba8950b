package main

import (
	"github.com/sirupsen/logrus"

	config "github.com/storefront-labs/admin-console/configs"
	"github.com/storefront-labs/admin-console/internal/infrastructure/backendmock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	server := backendmock.NewServer(logger)
	if err := server.Start(cfg.Backend.MockListenAddr); err != nil {
		logger.Fatal("Fixture backend stopped:", err)
	}
}
