package memoryrepo

import (
	"context"

	"restaurante-api/internal/dal/memstore"
	"restaurante-api/internal/service/models/dish"
)

// DishRepository stores dishes in the shared memory store.
type DishRepository struct {
	store *memstore.Client
}

// NewDishRepository creates a new DishRepository.
func NewDishRepository(store *memstore.Client) *DishRepository {
	return &DishRepository{store: store}
}

// List returns all dishes in insertion order.
func (r *DishRepository) List(_ context.Context) ([]dish.Dish, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	out := make([]dish.Dish, len(r.store.Dishes))
	copy(out, r.store.Dishes)

	return out, nil
}

// GetByID returns the dish with the given id.
func (r *DishRepository) GetByID(_ context.Context, id int64) (dish.Dish, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for _, d := range r.store.Dishes {
		if d.ID == id {
			return d, nil
		}
	}

	return dish.Dish{}, dish.ErrNotFound
}

// Insert assigns the next dish id and appends the dish.
func (r *DishRepository) Insert(_ context.Context, d dish.Dish) (dish.Dish, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	d.ID = r.store.NextDishID
	r.store.NextDishID++
	r.store.Dishes = append(r.store.Dishes, d)

	return d, nil
}

// Replace overwrites the whole record at the position id occupies. The id is
// retained; every other field comes from the argument.
func (r *DishRepository) Replace(_ context.Context, id int64, d dish.Dish) (dish.Dish, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Dishes {
		if r.store.Dishes[i].ID == id {
			d.ID = id
			r.store.Dishes[i] = d

			return d, nil
		}
	}

	return dish.Dish{}, dish.ErrNotFound
}

// Delete removes the dish with the given id.
func (r *DishRepository) Delete(_ context.Context, id int64) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	for i := range r.store.Dishes {
		if r.store.Dishes[i].ID == id {
			r.store.Dishes = append(r.store.Dishes[:i], r.store.Dishes[i+1:]...)

			return nil
		}
	}

	return dish.ErrNotFound
}
