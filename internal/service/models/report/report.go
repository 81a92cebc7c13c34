package report

import (
	"restaurante-api/internal/service/models/customer"
	"restaurante-api/internal/service/models/order"
)

// CustomerGroup aggregates every order placed by one customer.
type CustomerGroup struct {
	Customer   customer.Customer `json:"cliente"`
	Orders     []order.Order     `json:"pedidos"`
	TotalSpent float64           `json:"totalGasto"`
	OrderCount int               `json:"quantidadePedidos"`
}
