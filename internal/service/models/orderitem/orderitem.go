package orderitem

import (
	"restaurante-api/internal/service/models/dish"
)

// OrderItem is a line item within an order. Dish is a snapshot of the menu
// entry taken when the order was created; later edits to the menu never
// change it.
type OrderItem struct {
	DishID   int64     `json:"pratoId"`
	Dish     dish.Dish `json:"prato"`
	Quantity int       `json:"quantidade"`
}

// NewItem is the order-creation input for one line: a dish reference and a
// quantity, before the snapshot is taken.
type NewItem struct {
	DishID   int64
	Quantity int
}
