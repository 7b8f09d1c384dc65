package ports

import (
	"context"

	"github.com/contactdesk/customer-api/internal/core/domain"
)

// CreateCustomerInput carries the fields accepted when creating a customer.
// Company is optional.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// CustomerService defines the use-case operations over customer records.
// The ownerID argument is always the authenticated caller's user ID as
// resolved by the auth middleware, never something the client supplies.
type CustomerService interface {
	Create(ctx context.Context, ownerID string, input CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context, ownerID string) ([]*domain.Customer, error)
	Update(ctx context.Context, ownerID, id string, input CreateCustomerInput) error
	Delete(ctx context.Context, ownerID, id string) error
}
