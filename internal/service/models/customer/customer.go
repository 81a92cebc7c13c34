package customer

import "errors"

// ErrNotFound carries the wire-level message for a missing customer.
var ErrNotFound = errors.New("Cliente não encontrado")

// Customer represents a patron of the restaurant.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
}
