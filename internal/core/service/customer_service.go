package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/contactdesk/customer-api/internal/core/domain"
	"github.com/contactdesk/customer-api/internal/core/ports"
)

// CustomerService implements the customer use cases. Every operation is
// scoped to the owning user resolved by the auth middleware; the service
// never accepts an owner from the request body.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, ownerID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", created.ID).Str("owner_id", ownerID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) List(ctx context.Context, ownerID string) ([]*domain.Customer, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *CustomerService) Update(ctx context.Context, ownerID, id string, input ports.CreateCustomerInput) error {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return domain.ErrInvalidInput
	}

	err := s.repo.Update(ctx, ownerID, id, domain.CustomerUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("customer_id", id).Str("owner_id", ownerID).Msg("customer updated")
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Info().Str("customer_id", id).Str("owner_id", ownerID).Msg("customer deleted")
	return nil
}
