package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"product-catalog/internal/config"
	"product-catalog/internal/routes"
	"product-catalog/internal/storage"
	"product-catalog/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalln("failed to build logger:", err)
	}
	defer logger.Sync()

	backend := storage.New(cfg.CatalogFile, logger)
	catalog := store.New(backend, logger)

	// Backfill ids for sub-products persisted before ids were assigned on
	// creation.
	if err := catalog.EnsureSubProductIDs(); err != nil {
		logger.Fatal("failed to prepare catalog", zap.Error(err))
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.Default()
	routes.RegisterRoutes(router, catalog, cfg, logger)

	logger.Info("server running",
		zap.String("port", cfg.Port),
		zap.String("catalog", cfg.CatalogFile),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
