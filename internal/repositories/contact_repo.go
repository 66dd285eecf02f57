package repositories

import (
	"chocolatudo/internal/models"
)

// ContactRepository defines the interface for contact-message data access.
// IDs are allocated by the store and are strictly increasing.
type ContactRepository interface {
	NextID() int
	GetAll() ([]models.Contact, error)
	GetByID(id int) (*models.Contact, error)
	Add(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id int) error
	Count() int
	Clear()
}
