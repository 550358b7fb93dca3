package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mhudec/catalog/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(db.NewTestDB(t))
}

func TestCreateAndGetCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.CreateCategory(ctx, "Snowboarding")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if c.Name != "Snowboarding" {
		t.Errorf("expected name 'Snowboarding', got %q", c.Name)
	}

	got, err := s.GetCategory(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got.ID != c.ID || got.Name != c.Name {
		t.Errorf("got %+v, want %+v", got, c)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCategory(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateCategory(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}

	long := make([]byte, 81)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := s.CreateCategory(ctx, string(long)); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for long name, got %v", err)
	}
}

func TestListCategoriesStableOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.CreateCategory(ctx, "Soccer")
	s.CreateCategory(ctx, "Basketball")

	first, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(first))
	}
	if first[0].Name != "Soccer" || first[1].Name != "Basketball" {
		t.Errorf("unexpected order: %q, %q", first[0].Name, first[1].Name)
	}

	second, _ := s.ListCategories(ctx)
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("order changed between calls at index %d: %+v vs %+v", i, second[i], first[i])
		}
	}
}

func TestCountItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, _ := s.CreateCategory(ctx, "Hockey")
	s.CreateItem(ctx, "Stick", "", c.ID, "alice")
	s.CreateItem(ctx, "Puck", "", c.ID, "alice")

	n, err := s.CountItems(ctx, c.ID)
	if err != nil {
		t.Fatalf("CountItems: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 items, got %d", n)
	}
}
