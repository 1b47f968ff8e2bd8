package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"product-catalog/internal/cache"
	"product-catalog/internal/config"
	"product-catalog/internal/handlers"
	"product-catalog/internal/store"
)

func RegisterRoutes(router *gin.Engine, catalog *store.Catalog, cfg *config.Config, logger *zap.Logger) {
	responseCache := cache.New(5 * time.Minute)
	h := handlers.NewProductHandler(catalog, responseCache, logger)
	u := handlers.NewUploadHandler(cfg.UploadDir, logger)

	router.Static("/uploads", cfg.UploadDir)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", h.ListProducts)
		v1.POST("/products", h.CreateProduct)
		v1.GET("/products/:id", h.GetProduct)
		v1.PUT("/products/:id", h.UpdateProduct)
		v1.PATCH("/products/:id", h.UpdateProductDetails)
		v1.DELETE("/products/:id", h.DeleteProduct)
		v1.POST("/products/:id/ratings", h.AddRating)
		v1.POST("/products/:id/subproducts", h.AddSubProduct)
		v1.PUT("/products/:id/subproducts/:subId", h.UpdateSubProduct)
		v1.DELETE("/products/:id/subproducts/:subId", h.DeleteSubProduct)
		v1.POST("/uploads", u.UploadImage)
	}
}
