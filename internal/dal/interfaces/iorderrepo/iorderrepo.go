package iorderrepo

import (
	"context"

	"restaurante-api/internal/service/models/order"
)

// IOrderRepository is an interface for the order memory repository. Orders
// are append-only besides deletion, so there is no replace.
type IOrderRepository interface {
	List(ctx context.Context) ([]order.Order, error)
	GetByID(ctx context.Context, id int64) (order.Order, error)
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	Delete(ctx context.Context, id int64) error
}
