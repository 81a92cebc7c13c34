package dishsvc

import (
	"context"
	"errors"
	"testing"

	"restaurante-api/internal/dal/memstore"
	dishrepo "restaurante-api/internal/dal/repositories/dish/memory"
	"restaurante-api/internal/service/models/dish"
)

func newTestService() *DishService {
	store := memstore.MustNewClient()

	return MustNewDishService(
		WithDishRepository(dishrepo.NewDishRepository(store)),
	)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	svc := newTestService()

	first, err := svc.Create(context.Background(), dish.Dish{Name: "Feijoada", Price: 42.00})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), dish.Dish{Name: "Moqueca", Price: 55.00})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.ID != 4 {
		t.Errorf("expected id 4 after seed, got %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	svc := newTestService()

	updated, err := svc.Update(context.Background(), 1, dish.Dish{Name: "Pizza Quatro Queijos", Price: 39.90})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ID != 1 {
		t.Errorf("expected id kept, got %d", updated.ID)
	}
	if updated.Category != "" || updated.Ingredients != "" {
		t.Errorf("expected old fields dropped, got %+v", updated)
	}

	if _, err := svc.Update(context.Background(), 999, dish.Dish{Name: "X", Price: 1}); !errors.Is(err, dish.ErrNotFound) {
		t.Errorf("expected dish.ErrNotFound, got %v", err)
	}
}

func TestGetAfterDelete(t *testing.T) {
	svc := newTestService()

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), 3); !errors.Is(err, dish.ErrNotFound) {
		t.Errorf("expected dish.ErrNotFound, got %v", err)
	}

	remaining, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 2 {
		t.Errorf("expected 2 dishes left, got %d", len(remaining))
	}
}
