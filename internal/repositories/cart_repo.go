package repositories

import (
	"chocolatudo/internal/models"
)

// SessionResolver resolves which cart slot a request operates on. The
// storefront currently tracks a single implicit cart, but the seam allows
// a future per-session key without touching the cart service.
type SessionResolver interface {
	SessionKey() string
}

// FixedSessionResolver always resolves to the same slot.
type FixedSessionResolver struct{}

// SessionKey returns the single active-cart slot.
func (FixedSessionResolver) SessionKey() string { return "active" }

// CartRepository defines the interface for cart data access, keyed by
// session slot.
type CartRepository interface {
	GetBySession(sessionKey string) (*models.Cart, error)
	GetByID(id string) (*models.Cart, error)
	Create(sessionKey string) (*models.Cart, error)
	Update(cart *models.Cart) error
	Delete(id string) error
	Clear()
}
