package idishrepo

import (
	"context"

	"restaurante-api/internal/service/models/dish"
)

// IDishRepository is an interface for the dish memory repository.
type IDishRepository interface {
	List(ctx context.Context) ([]dish.Dish, error)
	GetByID(ctx context.Context, id int64) (dish.Dish, error)
	Insert(ctx context.Context, d dish.Dish) (dish.Dish, error)
	Replace(ctx context.Context, id int64, d dish.Dish) (dish.Dish, error)
	Delete(ctx context.Context, id int64) error
}
