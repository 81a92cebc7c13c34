package icustomerrepo

import (
	"context"

	"restaurante-api/internal/service/models/customer"
)

// ICustomerRepository is an interface for the customer memory repository.
type ICustomerRepository interface {
	List(ctx context.Context) ([]customer.Customer, error)
	GetByID(ctx context.Context, id int64) (customer.Customer, error)
	Insert(ctx context.Context, c customer.Customer) (customer.Customer, error)
	Replace(ctx context.Context, id int64, c customer.Customer) (customer.Customer, error)
	Delete(ctx context.Context, id int64) error
}
