package dishsvc

import (
	"context"
	"log/slog"

	"restaurante-api/internal/dal/interfaces/idishrepo"
	"restaurante-api/internal/service/models/dish"
)

// DishService is a service for managing the menu.
type DishService struct {
	dishRepo idishrepo.IDishRepository
}

// option is a function that configures the DishService.
type option func(*DishService)

// MustNewDishService creates a new DishService.
func MustNewDishService(opts ...option) *DishService {
	s := &DishService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithDishRepository sets the dish repository for the DishService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithDishRepository(dishRepo idishrepo.IDishRepository) option {
	return func(s *DishService) {
		s.dishRepo = dishRepo
	}
}

// List returns every dish on the menu.
func (s *DishService) List(ctx context.Context) ([]dish.Dish, error) {
	return s.dishRepo.List(ctx)
}

// Get returns a single dish by id.
func (s *DishService) Get(ctx context.Context, id int64) (dish.Dish, error) {
	return s.dishRepo.GetByID(ctx, id)
}

// Create adds a dish to the menu and returns it with its assigned id.
func (s *DishService) Create(ctx context.Context, d dish.Dish) (dish.Dish, error) {
	created, err := s.dishRepo.Insert(ctx, d)
	if err != nil {
		return dish.Dish{}, err
	}

	slog.Info("Dish created", "dish_id", created.ID, "name", created.Name)

	return created, nil
}

// Update replaces the whole dish record at id. There is no partial merge:
// every field of the stored record is overwritten, only the id survives.
func (s *DishService) Update(ctx context.Context, id int64, d dish.Dish) (dish.Dish, error) {
	return s.dishRepo.Replace(ctx, id, d)
}

// Delete removes a dish from the menu.
func (s *DishService) Delete(ctx context.Context, id int64) error {
	if err := s.dishRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Dish deleted", "dish_id", id)

	return nil
}
