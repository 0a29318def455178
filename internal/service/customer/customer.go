// internal/service/customer/customer_service.go
package customer

import (
	"context"

	"custman-service/internal/domain/customer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService struct {
	customerRepo customer.Repository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo customer.Repository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns all active customers, most recently updated first.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.customerRepo.ListActive(ctx)
}

// CreateCustomer validates the request and inserts a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	stub, err := req.Validate()
	if err != nil {
		return nil, err
	}

	c, err := s.customerRepo.Create(ctx, stub)
	if err != nil {
		s.logger.Error("failed to create customer",
			zap.String("email_address", stub.EmailAddress.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("customer created", zap.String("customer_id", c.ID.String()))
	return c, nil
}

// GetCustomer retrieves an active customer by id.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// GetCustomerByEmail retrieves an active customer by email address.
func (s *CustomerService) GetCustomerByEmail(ctx context.Context, email customer.EmailAddress) (*customer.Customer, error) {
	return s.customerRepo.FindByEmail(ctx, email)
}

// UpdateCustomer validates the request and replaces all mutable fields of the
// customer, returning the refreshed record.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	stub, err := req.Validate()
	if err != nil {
		return nil, err
	}

	c, err := s.customerRepo.Update(ctx, id, stub)
	if err != nil {
		s.logger.Error("failed to update customer",
			zap.String("customer_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("customer updated", zap.String("customer_id", c.ID.String()))
	return c, nil
}

// DeleteCustomer soft deletes a customer. Returns false when nothing was
// deleted because the id is unknown or already deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.customerRepo.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete customer",
			zap.String("customer_id", id.String()),
			zap.Error(err),
		)
		return false, err
	}

	if deleted {
		s.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	}
	return deleted, nil
}
