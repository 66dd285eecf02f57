package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"chocolatudo/internal/models"
)

// ErrCartNotFound is returned when no cart exists for the requested
// session slot or id.
var ErrCartNotFound = errors.New("cart not found")

// MemoryCartRepository is an in-memory implementation of CartRepository.
type MemoryCartRepository struct {
	carts  map[string]models.Cart
	active map[string]string // session key -> cart id
	mu     sync.RWMutex
}

// NewMemoryCartRepository creates a new instance of MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts:  make(map[string]models.Cart),
		active: make(map[string]string),
	}
}

// GetBySession returns the cart bound to the given session slot.
func (r *MemoryCartRepository) GetBySession(sessionKey string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cartID, ok := r.active[sessionKey]
	if !ok {
		return nil, ErrCartNotFound
	}
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return &cart, nil
}

// GetByID returns a cart by its id.
func (r *MemoryCartRepository) GetByID(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return &cart, nil
}

// Create makes a new empty cart and binds it to the session slot.
func (r *MemoryCartRepository) Create(sessionKey string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	cart := models.Cart{
		ID:           uuid.New().String(),
		Items:        []models.CartItem{},
		TotalItems:   0,
		TotalAmount:  decimal.Zero,
		DateCreated:  now,
		DateModified: now,
	}
	r.carts[cart.ID] = cart
	r.active[sessionKey] = cart.ID
	return &cart, nil
}

// Update persists the given cart.
func (r *MemoryCartRepository) Update(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.ID]; !ok {
		return fmt.Errorf("cart with ID %s not found for update: %w", cart.ID, ErrCartNotFound)
	}
	r.carts[cart.ID] = *cart
	return nil
}

// Delete removes a cart by its id and unbinds any session pointing at it.
func (r *MemoryCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return fmt.Errorf("cart with ID %s not found for deletion: %w", id, ErrCartNotFound)
	}
	delete(r.carts, id)
	for key, cartID := range r.active {
		if cartID == id {
			delete(r.active, key)
		}
	}
	return nil
}

// Clear removes all carts. Useful for resetting state between tests.
func (r *MemoryCartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts = make(map[string]models.Cart)
	r.active = make(map[string]string)
}
