package reportsvc

import (
	"context"
	"testing"

	"restaurante-api/internal/dal/memstore"
	customerrepo "restaurante-api/internal/dal/repositories/customer/memory"
	orderrepo "restaurante-api/internal/dal/repositories/order/memory"
	"restaurante-api/internal/service/models/order"
)

func newTestService() (*ReportService, *memstore.Client) {
	store := memstore.MustNewClient()
	svc := MustNewReportService(
		WithOrderRepository(orderrepo.NewOrderRepository(store)),
		WithCustomerRepository(customerrepo.NewCustomerRepository(store)),
	)

	return svc, store
}

func addOrder(store *memstore.Client, customerID int64, total float64) {
	store.Mu.Lock()
	defer store.Mu.Unlock()

	store.Orders = append(store.Orders, order.Order{
		ID:         store.NextOrderID,
		CustomerID: customerID,
		TotalValue: total,
	})
	store.NextOrderID++
}

func TestOrdersByCustomerAggregates(t *testing.T) {
	svc, store := newTestService()

	addOrder(store, 1, 50.00)
	addOrder(store, 1, 30.00)

	groups, err := svc.OrdersByCustomer(context.Background())
	if err != nil {
		t.Fatalf("OrdersByCustomer: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	if g.Customer.ID != 1 || g.Customer.Name != "João Silva" {
		t.Errorf("unexpected group customer: %+v", g.Customer)
	}
	if g.TotalSpent != 80.00 {
		t.Errorf("expected totalGasto 80.00, got %v", g.TotalSpent)
	}
	if g.OrderCount != 2 {
		t.Errorf("expected quantidadePedidos 2, got %d", g.OrderCount)
	}
	if len(g.Orders) != 2 {
		t.Errorf("expected 2 orders in group, got %d", len(g.Orders))
	}
}

func TestOrdersByCustomerFirstSeenOrder(t *testing.T) {
	svc, store := newTestService()

	addOrder(store, 2, 10.00)
	addOrder(store, 1, 20.00)
	addOrder(store, 2, 5.00)

	groups, err := svc.OrdersByCustomer(context.Background())
	if err != nil {
		t.Fatalf("OrdersByCustomer: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Customer.ID != 2 || groups[1].Customer.ID != 1 {
		t.Errorf("expected first-seen order [2 1], got [%d %d]",
			groups[0].Customer.ID, groups[1].Customer.ID)
	}
	if groups[0].TotalSpent != 15.00 {
		t.Errorf("expected totalGasto 15.00 for customer 2, got %v", groups[0].TotalSpent)
	}
}

func TestOrdersByCustomerSkipsDanglingReferences(t *testing.T) {
	svc, store := newTestService()

	addOrder(store, 1, 25.00)
	addOrder(store, 2, 40.00)

	// Delete customer 2; its order stays in the ledger but leaves the report.
	store.Mu.Lock()
	store.Customers = store.Customers[:1]
	store.Mu.Unlock()

	groups, err := svc.OrdersByCustomer(context.Background())
	if err != nil {
		t.Fatalf("OrdersByCustomer: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected dangling order skipped, got %d groups", len(groups))
	}
	if groups[0].Customer.ID != 1 {
		t.Errorf("unexpected group customer: %+v", groups[0].Customer)
	}
	if len(store.Orders) != 2 {
		t.Errorf("expected ledger untouched, got %d orders", len(store.Orders))
	}
}

func TestOrdersByCustomerEmptyLedger(t *testing.T) {
	svc, _ := newTestService()

	groups, err := svc.OrdersByCustomer(context.Background())
	if err != nil {
		t.Fatalf("OrdersByCustomer: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
