package memoryrepo

import (
	"context"

	"restaurante-api/internal/dal/memstore"
	"restaurante-api/internal/service/models/customer"
)

// CustomerRepository stores customers in the shared memory store.
type CustomerRepository struct {
	store *memstore.Client
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(store *memstore.Client) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// List returns all customers in insertion order.
func (r *CustomerRepository) List(_ context.Context) ([]customer.Customer, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	out := make([]customer.Customer, len(r.store.Customers))
	copy(out, r.store.Customers)

	return out, nil
}

// GetByID returns the customer with the given id.
func (r *CustomerRepository) GetByID(_ context.Context, id int64) (customer.Customer, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for _, c := range r.store.Customers {
		if c.ID == id {
			return c, nil
		}
	}

	return customer.Customer{}, customer.ErrNotFound
}

// Insert assigns the next customer id and appends the customer.
func (r *CustomerRepository) Insert(_ context.Context, c customer.Customer) (customer.Customer, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	c.ID = r.store.NextCustomerID
	r.store.NextCustomerID++
	r.store.Customers = append(r.store.Customers, c)

	return c, nil
}

// Replace overwrites the whole record, keeping only the id.
func (r *CustomerRepository) Replace(_ context.Context, id int64, c customer.Customer) (customer.Customer, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Customers {
		if r.store.Customers[i].ID == id {
			c.ID = id
			r.store.Customers[i] = c

			return c, nil
		}
	}

	return customer.Customer{}, customer.ErrNotFound
}

// Delete removes the customer with the given id. Orders referencing the
// customer are left untouched; the report layer skips them from then on.
func (r *CustomerRepository) Delete(_ context.Context, id int64) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Customers {
		if r.store.Customers[i].ID == id {
			r.store.Customers = append(r.store.Customers[:i], r.store.Customers[i+1:]...)

			return nil
		}
	}

	return customer.ErrNotFound
}
