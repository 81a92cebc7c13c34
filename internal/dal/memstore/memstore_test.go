package memstore

import "testing"

func TestNewClientStartsEmpty(t *testing.T) {
	c := NewClient()

	if len(c.Dishes) != 0 || len(c.Customers) != 0 || len(c.Orders) != 0 {
		t.Fatalf("expected empty collections, got %d dishes, %d customers, %d orders",
			len(c.Dishes), len(c.Customers), len(c.Orders))
	}
	if c.NextDishID != 1 || c.NextCustomerID != 1 || c.NextOrderID != 1 {
		t.Fatalf("expected all counters at 1, got %d/%d/%d",
			c.NextDishID, c.NextCustomerID, c.NextOrderID)
	}
}

func TestSeedLoadsStartupData(t *testing.T) {
	c := MustNewClient()

	if len(c.Dishes) != 3 {
		t.Fatalf("expected 3 seeded dishes, got %d", len(c.Dishes))
	}
	if len(c.Customers) != 2 {
		t.Fatalf("expected 2 seeded customers, got %d", len(c.Customers))
	}
	if len(c.Orders) != 0 {
		t.Fatalf("expected no seeded orders, got %d", len(c.Orders))
	}

	if c.Dishes[0].Name != "Pizza Margherita" || c.Dishes[0].Price != 35.90 {
		t.Errorf("unexpected first dish: %+v", c.Dishes[0])
	}
	if c.Customers[1].Name != "Maria Santos" {
		t.Errorf("unexpected second customer: %+v", c.Customers[1])
	}

	// Counters must sit just past the seeded ids.
	if c.NextDishID != 4 || c.NextCustomerID != 3 || c.NextOrderID != 1 {
		t.Errorf("unexpected counters: %d/%d/%d",
			c.NextDishID, c.NextCustomerID, c.NextOrderID)
	}
}
