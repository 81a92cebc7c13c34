package memoryrepo

import (
	"context"

	"restaurante-api/internal/dal/memstore"
	"restaurante-api/internal/service/models/order"
)

// OrderRepository stores orders in the shared memory store.
type OrderRepository struct {
	store *memstore.Client
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(store *memstore.Client) *OrderRepository {
	return &OrderRepository{store: store}
}

// List returns all orders in insertion order.
func (r *OrderRepository) List(_ context.Context) ([]order.Order, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	out := make([]order.Order, len(r.store.Orders))
	copy(out, r.store.Orders)

	return out, nil
}

// GetByID returns the order with the given id.
func (r *OrderRepository) GetByID(_ context.Context, id int64) (order.Order, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for _, o := range r.store.Orders {
		if o.ID == id {
			return o, nil
		}
	}

	return order.Order{}, order.ErrNotFound
}

// Insert assigns the next order id and appends the order.
func (r *OrderRepository) Insert(_ context.Context, o order.Order) (order.Order, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	o.ID = r.store.NextOrderID
	r.store.NextOrderID++
	r.store.Orders = append(r.store.Orders, o)

	return o, nil
}

// Delete removes the order with the given id.
func (r *OrderRepository) Delete(_ context.Context, id int64) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Orders {
		if r.store.Orders[i].ID == id {
			r.store.Orders = append(r.store.Orders[:i], r.store.Orders[i+1:]...)

			return nil
		}
	}

	return order.ErrNotFound
}
