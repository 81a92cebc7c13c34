package dish

import "errors"

// ErrNotFound carries the wire-level message for a missing dish.
var ErrNotFound = errors.New("Prato não encontrado")

// Dish represents a menu item.
type Dish struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
	Ingredients string  `json:"ingredientes"`
}
