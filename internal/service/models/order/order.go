package order

import (
	"errors"
	"fmt"

	"restaurante-api/internal/service/models/orderitem"
)

// ErrNotFound carries the wire-level message for a missing order.
var ErrNotFound = errors.New("Pedido não encontrado")

// DishNotFoundError reports which requested dish id did not match any menu
// entry during order creation.
type DishNotFoundError struct {
	DishID int64
}

func (e *DishNotFoundError) Error() string {
	return fmt.Sprintf("Prato com ID %d não encontrado", e.DishID)
}

// Order represents a customer's purchase event. CreatedAt is an ISO-8601 UTC
// string stamped once at creation and never updated; orders have no update
// operation, only deletion.
type Order struct {
	ID         int64                 `json:"id"`
	CustomerID int64                 `json:"clienteId"`
	Items      []orderitem.OrderItem `json:"itens"`
	TotalValue float64               `json:"valorTotal"`
	CreatedAt  string                `json:"data"`
}
