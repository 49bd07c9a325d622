package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/fizzlab/sodacraft/internal/repository"
)

func TestAvailability(t *testing.T) {
	repo, err := repository.NewInMemoryIngredientRepository()
	if err != nil {
		t.Fatalf("failed to load repository: %v", err)
	}
	svc := NewService(repo, 42)
	ctx := context.Background()

	report, err := svc.Availability(ctx, 1)
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}

	if report.IngredientID != 1 {
		t.Errorf("ingredient ID = %d, want 1", report.IngredientID)
	}
	if report.IngredientName == "" {
		t.Error("missing ingredient name")
	}
	if len(report.Suppliers) == 0 {
		t.Fatal("no supplier availability returned")
	}
	for _, a := range report.Suppliers {
		if a.SupplierName == "" {
			t.Errorf("supplier %d missing name", a.SupplierID)
		}
		if a.InStock && a.QuantityKg <= 0 {
			t.Errorf("supplier %d in stock with quantity %v", a.SupplierID, a.QuantityKg)
		}
		if !a.InStock && a.QuantityKg != 0 {
			t.Errorf("supplier %d out of stock with quantity %v", a.SupplierID, a.QuantityKg)
		}
	}
}

func TestAvailabilityDeterministic(t *testing.T) {
	repo, err := repository.NewInMemoryIngredientRepository()
	if err != nil {
		t.Fatalf("failed to load repository: %v", err)
	}
	svc := NewService(repo, 42)
	ctx := context.Background()

	first, err := svc.Availability(ctx, 5)
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	second, err := svc.Availability(ctx, 5)
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}

	if len(first.Suppliers) != len(second.Suppliers) {
		t.Fatalf("lookup not stable: %d vs %d suppliers", len(first.Suppliers), len(second.Suppliers))
	}
	for i := range first.Suppliers {
		if first.Suppliers[i] != second.Suppliers[i] {
			t.Errorf("supplier %d availability differs between lookups", first.Suppliers[i].SupplierID)
		}
	}
}

func TestAvailabilityUnknownIngredient(t *testing.T) {
	repo, err := repository.NewInMemoryIngredientRepository()
	if err != nil {
		t.Fatalf("failed to load repository: %v", err)
	}
	svc := NewService(repo, 42)

	_, err = svc.Availability(context.Background(), 9999)
	if !errors.Is(err, repository.ErrIngredientNotFound) {
		t.Errorf("err = %v, want ErrIngredientNotFound", err)
	}
}
