package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"product-catalog/internal/cache"
	"product-catalog/internal/models"
	"product-catalog/internal/store"
)

const (
	listCacheKey    = "products:list"
	listCacheTTL    = 2 * time.Minute
	productCacheTTL = 5 * time.Minute
)

type ProductHandler struct {
	catalog *store.Catalog
	cache   *cache.Cache
	logger  *zap.Logger
}

func NewProductHandler(catalog *store.Catalog, c *cache.Cache, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		cache:   c,
		logger:  logger,
	}
}

// ListProducts returns the full catalog (cached).
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if cached, found := h.cache.Get(listCacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.catalog.List()
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.cache.Set(listCacheKey, products, listCacheTTL)
	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by case-insensitive id (cached).
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	cacheKey := productCacheKey(id)

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.catalog.GetByID(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.cache.Set(cacheKey, product, productCacheTTL)
	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a new product; duplicate ids are rejected with 409.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.Add(product); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces a product. A body without subProducts keeps the
// stored sub-product sequence.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The path names the record being updated; the body's id is stored as
	// the new value but must match it case-insensitively to be found.
	product.ID = c.Param("id")

	if err := h.catalog.Update(product); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// UpdateProductDetails edits only the top-level fields of a product.
func (h *ProductHandler) UpdateProductDetails(c *gin.Context) {
	var details models.ProductDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	details.ID = c.Param("id")

	if err := h.catalog.UpdateDetails(details); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct removes a product and all of its sub-products.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalog.Delete(id); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

type ratingRequest struct {
	// Bounds are an API concern; the store accepts any integer.
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// AddRating appends a rating to a product.
func (h *ProductHandler) AddRating(c *gin.Context) {
	id := c.Param("id")

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.AddRating(id, req.Value); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "rating added"})
}

// AddSubProduct appends a sub-product, assigning an id when none is given.
func (h *ProductHandler) AddSubProduct(c *gin.Context) {
	id := c.Param("id")

	var sub models.SubProduct
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.catalog.AddSubProduct(id, sub)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusCreated, stored)
}

// UpdateSubProduct replaces a sub-product matched by exact id.
func (h *ProductHandler) UpdateSubProduct(c *gin.Context) {
	id := c.Param("id")

	var sub models.SubProduct
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub.ID = c.Param("subId")

	if err := h.catalog.UpdateSubProduct(id, sub); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "sub-product updated"})
}

// DeleteSubProduct removes a sub-product matched by exact id.
func (h *ProductHandler) DeleteSubProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalog.DeleteSubProduct(id, c.Param("subId")); err != nil {
		h.renderError(c, err)
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "sub-product deleted"})
}

// invalidate drops every cached product entry along with the list. A full
// update may change the stored id's casing, so sweeping the prefix is
// safer than deleting a single key.
func (h *ProductHandler) invalidate() {
	h.cache.DeleteByPrefix("product:")
	h.cache.Delete(listCacheKey)
}

func (h *ProductHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("catalog operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func productCacheKey(id string) string {
	return "product:" + strings.ToLower(id)
}
