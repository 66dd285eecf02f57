package repositories

import (
	"fmt"
	"sync"
	"time"

	"chocolatudo/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// It is seeded with the primary product at construction time.
type MemoryProductRepository struct {
	products  map[int]models.Product
	currentID int
	mu        sync.RWMutex
}

// NewMemoryProductRepository creates a product store pre-seeded with the
// primary product (id 1).
func NewMemoryProductRepository() *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make(map[int]models.Product),
	}
	r.seed()
	return r
}

func (r *MemoryProductRepository) seed() {
	now := time.Now().UTC()
	r.products[models.PrimaryProductID] = models.Product{
		ID:          models.PrimaryProductID,
		Name:        models.DefaultProductName,
		Price:       models.DefaultProductPrice,
		Description: models.DefaultProductDescription,
		PrimaryImage: models.ProductImage{
			URL:       models.DefaultProductImageURL,
			AltText:   models.DefaultProductAltText,
			Width:     models.ImageMinWidth,
			Height:    models.ImageMinHeight,
			Format:    "jpg",
			IsPrimary: true,
		},
		SecondaryImages: []models.ProductImage{},
		DateCreated:     now,
		DateModified:    now,
	}
	r.currentID = models.PrimaryProductID
}

// GetAll returns all products.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d not found", id)
	}
	return &product, nil
}

// GetPrimary returns the primary product (id 1).
func (r *MemoryProductRepository) GetPrimary() (*models.Product, error) {
	return r.GetByID(models.PrimaryProductID)
}

// Create adds a new product, assigning the next id when none is set.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		r.currentID++
		product.ID = r.currentID
	} else if product.ID > r.currentID {
		r.currentID = product.ID
	}

	now := time.Now().UTC()
	product.DateCreated = now
	product.DateModified = now
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product and stamps dateModified.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %d not found for update", product.ID)
	}
	product.DateCreated = existing.DateCreated
	product.DateModified = time.Now().UTC()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID. The primary product can never be
// deleted.
func (r *MemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == models.PrimaryProductID {
		return fmt.Errorf("primary product cannot be deleted")
	}
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d not found for deletion", id)
	}
	delete(r.products, id)
	return nil
}

// Clear removes all products and re-seeds the primary product. Useful
// for resetting state between tests.
func (r *MemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[int]models.Product)
	r.seed()
}
