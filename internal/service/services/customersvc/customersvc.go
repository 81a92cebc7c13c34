package customersvc

import (
	"context"
	"log/slog"

	"restaurante-api/internal/dal/interfaces/icustomerrepo"
	"restaurante-api/internal/service/models/customer"
)

// CustomerService is a service for managing customers.
type CustomerService struct {
	customerRepo icustomerrepo.ICustomerRepository
}

// option is a function that configures the CustomerService.
type option func(*CustomerService)

// MustNewCustomerService creates a new CustomerService.
func MustNewCustomerService(opts ...option) *CustomerService {
	s := &CustomerService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCustomerRepository sets the customer repository for the CustomerService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCustomerRepository(customerRepo icustomerrepo.ICustomerRepository) option {
	return func(s *CustomerService) {
		s.customerRepo = customerRepo
	}
}

// List returns every registered customer.
func (s *CustomerService) List(ctx context.Context) ([]customer.Customer, error) {
	return s.customerRepo.List(ctx)
}

// Get returns a single customer by id.
func (s *CustomerService) Get(ctx context.Context, id int64) (customer.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// Create registers a customer and returns it with its assigned id.
func (s *CustomerService) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	created, err := s.customerRepo.Insert(ctx, c)
	if err != nil {
		return customer.Customer{}, err
	}

	slog.Info("Customer created", "customer_id", created.ID, "name", created.Name)

	return created, nil
}

// Update replaces the whole customer record at id, keeping only the id.
func (s *CustomerService) Update(ctx context.Context, id int64, c customer.Customer) (customer.Customer, error) {
	return s.customerRepo.Replace(ctx, id, c)
}

// Delete removes a customer. Existing orders that reference the customer are
// kept; they just stop appearing in the per-customer report.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Customer deleted", "customer_id", id)

	return nil
}
