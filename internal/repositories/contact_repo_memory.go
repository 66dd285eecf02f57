package repositories

import (
	"fmt"
	"sync"
	"time"

	"chocolatudo/internal/models"
)

// MemoryContactRepository is an in-memory implementation of ContactRepository.
type MemoryContactRepository struct {
	contacts  map[int]models.Contact
	currentID int
	mu        sync.RWMutex
}

// NewMemoryContactRepository creates a new instance of MemoryContactRepository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{
		contacts: make(map[int]models.Contact),
	}
}

// NextID allocates the next contact id. IDs start at 1 and never repeat.
func (r *MemoryContactRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.currentID++
	return r.currentID
}

// GetAll returns all stored contacts.
func (r *MemoryContactRepository) GetAll() ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contactList := make([]models.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contactList = append(contactList, c)
	}
	return contactList, nil
}

// GetByID returns a contact by its ID.
func (r *MemoryContactRepository) GetByID(id int) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, fmt.Errorf("contact with ID %d not found", id)
	}
	return &contact, nil
}

// Add stores a new contact under its pre-allocated id.
func (r *MemoryContactRepository) Add(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts[contact.ID] = *contact
	return nil
}

// Update replaces an existing contact and stamps dateModified. Not
// exercised by the submission flow; kept for status transitions handled
// elsewhere.
func (r *MemoryContactRepository) Update(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.contacts[contact.ID]
	if !ok {
		return fmt.Errorf("contact with ID %d not found for update", contact.ID)
	}
	contact.DateCreated = existing.DateCreated
	contact.DateModified = time.Now().UTC()
	r.contacts[contact.ID] = *contact
	return nil
}

// Delete removes a contact by its ID.
func (r *MemoryContactRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return fmt.Errorf("contact with ID %d not found for deletion", id)
	}
	delete(r.contacts, id)
	return nil
}

// Count returns the number of stored contacts.
func (r *MemoryContactRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.contacts)
}

// Clear removes all contacts and resets the id sequence. Useful for
// resetting state between tests.
func (r *MemoryContactRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts = make(map[int]models.Contact)
	r.currentID = 0
}
