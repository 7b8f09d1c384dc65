package ports

import (
	"context"

	"github.com/contactdesk/customer-api/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer records.
// Every read and write is filtered by the owning user's ID; a record owned by
// another user behaves exactly like one that does not exist.
type CustomerRepository interface {
	// Create inserts a new customer. Returns domain.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Customer, error)
	// Update replaces the mutable fields of the customer matching id and
	// ownerID. Returns domain.ErrCustomerNotFound when no row matched.
	Update(ctx context.Context, ownerID, id string, fields domain.CustomerUpdate) error
	// Delete removes the customer matching id and ownerID. Returns
	// domain.ErrCustomerNotFound when no row matched.
	Delete(ctx context.Context, ownerID, id string) error
}
