package memstore

import (
	"sync"

	"restaurante-api/internal/service/models/customer"
	"restaurante-api/internal/service/models/dish"
	"restaurante-api/internal/service/models/order"
)

// Client owns all application state: one slice and one id counter per
// collection. Repositories take Mu around every read and every
// read-modify-write, so counter increments and appends are atomic even when
// the HTTP server handles requests in parallel.
type Client struct {
	Mu sync.Mutex

	Dishes    []dish.Dish
	Customers []customer.Customer
	Orders    []order.Order

	NextDishID     int64
	NextCustomerID int64
	NextOrderID    int64
}

// NewClient creates an empty store with all counters at 1.
func NewClient() *Client {
	return &Client{
		Dishes:         []dish.Dish{},
		Customers:      []customer.Customer{},
		Orders:         []order.Order{},
		NextDishID:     1,
		NextCustomerID: 1,
		NextOrderID:    1,
	}
}

// MustNewClient creates a store pre-populated with the startup menu and
// customer base. Orders always start empty.
func MustNewClient() *Client {
	c := NewClient()
	c.Seed()
	return c
}

// Seed loads the initial cardápio and customers and advances the counters
// past the seeded ids.
func (c *Client) Seed() {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Dishes = []dish.Dish{
		{ID: 1, Name: "Pizza Margherita", Price: 35.90, Category: "Pizza", Ingredients: "Molho de tomate, mussarela, manjericão"},
		{ID: 2, Name: "Hambúrguer Artesanal", Price: 28.50, Category: "Hambúrguer", Ingredients: "Pão, carne 180g, queijo, alface, tomate"},
		{ID: 3, Name: "Lasanha Bolonhesa", Price: 32.00, Category: "Massas", Ingredients: "Massa, carne moída, molho bolonhesa, queijo"},
	}
	c.Customers = []customer.Customer{
		{ID: 1, Name: "João Silva", Phone: "(61) 99999-1234", Address: "SQN 123, Bloco A, Apt 101"},
		{ID: 2, Name: "Maria Santos", Phone: "(61) 98888-5678", Address: "SQSW 304, Bloco B, Casa 15"},
	}
	c.Orders = []order.Order{}

	c.NextDishID = 4
	c.NextCustomerID = 3
	c.NextOrderID = 1
}
