// Package store implements the catalog's CRUD façade over the backing
// file. It validates inputs, applies the mutation rules and drives the
// storage layer under a single mutex.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"product-catalog/internal/identifier"
	"product-catalog/internal/models"
	"product-catalog/internal/storage"
)

var (
	// ErrInvalidInput marks a request with a missing or empty required id.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a lookup that matched no product or sub-product.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID marks an insert whose id is already taken.
	ErrDuplicateID = errors.New("duplicate id")
)

// Catalog serializes all access to the shared backing file. Mutations
// reload the collection from disk before applying, so the in-memory view
// can never drift from what was actually persisted; reads take the same
// mutex so they observe only fully-applied mutations.
type Catalog struct {
	mu      sync.Mutex
	backend *storage.Store
	logger  *zap.Logger
}

func New(backend *storage.Store, logger *zap.Logger) *Catalog {
	return &Catalog{
		backend: backend,
		logger:  logger,
	}
}

// List returns the current full collection. Never nil on success.
func (c *Catalog) List() ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backend.Load()
}

// GetByID looks a product up by case-insensitive id.
func (c *Catalog) GetByID(id string) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return nil, err
	}
	i := indexByID(products, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: product %q", ErrNotFound, id)
	}
	p := products[i]
	return &p, nil
}

// Add inserts a new product. Ids clashing case-insensitively with an
// existing product are rejected rather than overwritten. Sub-products
// arriving without an id get one assigned before the insert.
func (c *Catalog) Add(p models.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	if indexByID(products, p.ID) >= 0 {
		return fmt.Errorf("%w: product %q", ErrDuplicateID, p.ID)
	}

	for i := range p.SubProducts {
		if p.SubProducts[i].ID == "" {
			p.SubProducts[i].ID = identifier.New(subIDTaken(p.SubProducts))
		}
	}

	products = append(products, p)
	return c.backend.Save(products)
}

// Update overwrites every field of the stored product with p's fields,
// with one deliberate exception: a nil p.SubProducts preserves the stored
// sub-product sequence, so callers that don't intend to touch sub-products
// can omit them without deleting them.
func (c *Catalog) Update(p models.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	i := indexByID(products, p.ID)
	if i < 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, p.ID)
	}

	if p.SubProducts == nil {
		p.SubProducts = products[i].SubProducts
	}
	products[i] = p
	return c.backend.Save(products)
}

// UpdateDetails overwrites only the top-level text fields of the stored
// product. Ratings, sub-products and the stored id casing are untouched.
func (c *Catalog) UpdateDetails(d models.ProductDetails) error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	i := indexByID(products, d.ID)
	if i < 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, d.ID)
	}

	p := &products[i]
	p.Brand = d.Brand
	p.Name = d.Name
	p.Type = d.Type
	p.URL = d.URL
	p.Description = d.Description
	p.Category = d.Category
	p.SubCategory = d.SubCategory
	p.Image = d.Image
	return c.backend.Save(products)
}

// Delete removes a product and, in the same persisted snapshot, all of its
// sub-products.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	i := indexByID(products, id)
	if i < 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, id)
	}

	products = append(products[:i], products[i+1:]...)
	return c.backend.Save(products)
}

// AddRating appends value to the product's ratings. Order is preserved and
// duplicates are kept. Range checks belong to the API layer, so any
// integer is accepted here.
func (c *Catalog) AddRating(id string, value int) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	i := indexByID(products, id)
	if i < 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, id)
	}

	products[i].Ratings = append(products[i].Ratings, value)
	return c.backend.Save(products)
}

// AddSubProduct appends sub to the product's sequence, assigning an id if
// sub arrives without one. The stored copy is returned so callers learn
// the assigned id.
func (c *Catalog) AddSubProduct(productID string, sub models.SubProduct) (*models.SubProduct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return nil, err
	}
	i := indexByID(products, productID)
	if i < 0 {
		return nil, fmt.Errorf("%w: product %q", ErrNotFound, productID)
	}

	p := &products[i]
	if sub.ID == "" {
		sub.ID = identifier.New(subIDTaken(p.SubProducts))
	}
	p.SubProducts = append(p.SubProducts, sub)

	if err := c.backend.Save(products); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubProduct overwrites the sub-product whose id exactly equals
// sub.ID within the given product's sequence.
func (c *Catalog) UpdateSubProduct(productID string, sub models.SubProduct) error {
	if sub.ID == "" {
		return fmt.Errorf("%w: sub-product id is required", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	i := indexByID(products, productID)
	if i < 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, productID)
	}

	p := &products[i]
	if len(p.SubProducts) == 0 {
		return fmt.Errorf("%w: product %q has no sub-products", ErrNotFound, productID)
	}
	j := indexBySubID(p.SubProducts, sub.ID)
	if j < 0 {
		return fmt.Errorf("%w: sub-product %q", ErrNotFound, sub.ID)
	}

	p.SubProducts[j] = sub
	return c.backend.Save(products)
}

// DeleteSubProduct removes the sub-product whose id exactly equals subID
// from the given product's sequence.
func (c *Catalog) DeleteSubProduct(productID, subID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}
	i := indexByID(products, productID)
	if i < 0 {
		return fmt.Errorf("%w: product %q", ErrNotFound, productID)
	}

	p := &products[i]
	if len(p.SubProducts) == 0 {
		return fmt.Errorf("%w: product %q has no sub-products", ErrNotFound, productID)
	}
	j := indexBySubID(p.SubProducts, subID)
	if j < 0 {
		return fmt.Errorf("%w: sub-product %q", ErrNotFound, subID)
	}

	p.SubProducts = append(p.SubProducts[:j], p.SubProducts[j+1:]...)
	return c.backend.Save(products)
}

// EnsureSubProductIDs backfills ids for sub-products persisted before ids
// became mandatory. It persists only if something changed and never fails
// on business grounds.
func (c *Catalog) EnsureSubProductIDs() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.backend.Load()
	if err != nil {
		return err
	}

	assigned := 0
	for i := range products {
		subs := products[i].SubProducts
		for j := range subs {
			if subs[j].ID == "" {
				subs[j].ID = identifier.New(subIDTaken(subs))
				assigned++
			}
		}
	}
	if assigned == 0 {
		return nil
	}

	c.logger.Info("assigned missing sub-product ids", zap.Int("count", assigned))
	return c.backend.Save(products)
}

// indexByID matches product ids case-insensitively.
func indexByID(products []models.Product, id string) int {
	for i := range products {
		if strings.EqualFold(products[i].ID, id) {
			return i
		}
	}
	return -1
}

// indexBySubID matches sub-product ids exactly.
func indexBySubID(subs []models.SubProduct, id string) int {
	for i := range subs {
		if subs[i].ID == id {
			return i
		}
	}
	return -1
}

func subIDTaken(subs []models.SubProduct) func(string) bool {
	return func(id string) bool {
		return indexBySubID(subs, id) >= 0
	}
}
