package ordersvc

import (
	"context"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"

	"restaurante-api/internal/dal/interfaces/icustomerrepo"
	"restaurante-api/internal/dal/interfaces/idishrepo"
	"restaurante-api/internal/dal/interfaces/iorderrepo"
	"restaurante-api/internal/service/models/order"
	"restaurante-api/internal/service/models/orderitem"
)

// OrderService is a service for managing orders.
type OrderService struct {
	orderRepo    iorderrepo.IOrderRepository
	dishRepo     idishrepo.IDishRepository
	customerRepo icustomerrepo.ICustomerRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(orderRepo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = orderRepo
	}
}

// WithDishRepository sets the dish repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithDishRepository(dishRepo idishrepo.IDishRepository) option {
	return func(s *OrderService) {
		s.dishRepo = dishRepo
	}
}

// WithCustomerRepository sets the customer repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCustomerRepository(customerRepo icustomerrepo.ICustomerRepository) option {
	return func(s *OrderService) {
		s.customerRepo = customerRepo
	}
}

// List returns every order in the ledger.
func (s *OrderService) List(ctx context.Context) ([]order.Order, error) {
	return s.orderRepo.List(ctx)
}

// Get returns a single order by id.
func (s *OrderService) Get(ctx context.Context, id int64) (order.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// Create places an order for customerID. The customer and every requested
// dish are resolved before anything is written, so a missing reference aborts
// the whole creation with the ledger untouched. Each line carries a snapshot
// of the dish as it is at this moment; the total is the sum of snapshot price
// times quantity, rounded to two decimal places.
func (s *OrderService) Create(ctx context.Context, customerID int64, items []orderitem.NewItem) (order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.Create")
	defer span.End()

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return order.Order{}, err
	}

	totalValue := 0.0
	orderItems := make([]orderitem.OrderItem, 0, len(items))
	for _, item := range items {
		d, err := s.dishRepo.GetByID(ctx, item.DishID)
		if err != nil {
			return order.Order{}, &order.DishNotFoundError{DishID: item.DishID}
		}

		totalValue += d.Price * float64(item.Quantity)
		orderItems = append(orderItems, orderitem.OrderItem{
			DishID:   d.ID,
			Dish:     d,
			Quantity: item.Quantity,
		})
	}

	created, err := s.orderRepo.Insert(ctx, order.Order{
		CustomerID: customerID,
		Items:      orderItems,
		TotalValue: math.Round(totalValue*100) / 100,
		CreatedAt:  time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
	if err != nil {
		return order.Order{}, err
	}

	slog.Info("Order created",
		"order_id", created.ID,
		"customer_id", created.CustomerID,
		"items_count", len(created.Items),
		"total_value", created.TotalValue)

	return created, nil
}

// Delete removes an order from the ledger.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Order deleted", "order_id", id)

	return nil
}
