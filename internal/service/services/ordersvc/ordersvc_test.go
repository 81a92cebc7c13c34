package ordersvc

import (
	"context"
	"errors"
	"testing"

	"restaurante-api/internal/dal/memstore"
	customerrepo "restaurante-api/internal/dal/repositories/customer/memory"
	dishrepo "restaurante-api/internal/dal/repositories/dish/memory"
	orderrepo "restaurante-api/internal/dal/repositories/order/memory"
	"restaurante-api/internal/service/models/customer"
	"restaurante-api/internal/service/models/dish"
	"restaurante-api/internal/service/models/order"
	"restaurante-api/internal/service/models/orderitem"
)

func newTestService() (*OrderService, *memstore.Client) {
	store := memstore.MustNewClient()
	svc := MustNewOrderService(
		WithOrderRepository(orderrepo.NewOrderRepository(store)),
		WithDishRepository(dishrepo.NewDishRepository(store)),
		WithCustomerRepository(customerrepo.NewCustomerRepository(store)),
	)

	return svc, store
}

func TestCreateComputesRoundedTotal(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), 1, []orderitem.NewItem{
		{DishID: 1, Quantity: 2},
		{DishID: 2, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 35.90*2 + 28.50*1 against the seed menu.
	if created.TotalValue != 100.30 {
		t.Errorf("expected total 100.30, got %v", created.TotalValue)
	}
	if created.ID != 1 {
		t.Errorf("expected first order id 1, got %d", created.ID)
	}
	if created.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if len(created.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(created.Items))
	}
	if created.Items[0].Dish.Name != "Pizza Margherita" {
		t.Errorf("expected snapshot of dish 1, got %+v", created.Items[0].Dish)
	}
}

func TestCreateSnapshotIsFrozen(t *testing.T) {
	svc, store := newTestService()

	created, err := svc.Create(context.Background(), 1, []orderitem.NewItem{{DishID: 1, Quantity: 1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Rewrite the source dish after the order exists.
	repo := dishrepo.NewDishRepository(store)
	if _, err := repo.Replace(context.Background(), 1, dish.Dish{Name: "Pizza Calabresa", Price: 99.99}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Items[0].Dish.Name != "Pizza Margherita" || got.Items[0].Dish.Price != 35.90 {
		t.Errorf("snapshot changed after dish edit: %+v", got.Items[0].Dish)
	}
	if got.TotalValue != 35.90 {
		t.Errorf("total changed after dish edit: %v", got.TotalValue)
	}
}

func TestCreateUnknownDishLeavesLedgerUntouched(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Create(context.Background(), 1, []orderitem.NewItem{
		{DishID: 1, Quantity: 1},
		{DishID: 999, Quantity: 1},
	})

	var dishErr *order.DishNotFoundError
	if !errors.As(err, &dishErr) {
		t.Fatalf("expected DishNotFoundError, got %v", err)
	}
	if dishErr.DishID != 999 {
		t.Errorf("expected missing id 999, got %d", dishErr.DishID)
	}
	if dishErr.Error() != "Prato com ID 999 não encontrado" {
		t.Errorf("unexpected message: %q", dishErr.Error())
	}

	if len(store.Orders) != 0 {
		t.Errorf("expected no order appended, ledger has %d", len(store.Orders))
	}
	if store.NextOrderID != 1 {
		t.Errorf("expected order counter untouched, got %d", store.NextOrderID)
	}
}

func TestCreateUnknownCustomer(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Create(context.Background(), 42, []orderitem.NewItem{{DishID: 1, Quantity: 1}})
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected customer.ErrNotFound, got %v", err)
	}
	if len(store.Orders) != 0 {
		t.Errorf("expected no order appended, ledger has %d", len(store.Orders))
	}
}

func TestOrderIDsIncrease(t *testing.T) {
	svc, _ := newTestService()

	items := []orderitem.NewItem{{DishID: 2, Quantity: 1}}
	first, err := svc.Create(context.Background(), 1, items)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), 2, items)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestDeleteTwice(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), 1, []orderitem.NewItem{{DishID: 3, Quantity: 1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("second delete: expected order.ErrNotFound, got %v", err)
	}
}
