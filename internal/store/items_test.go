package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndGetItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, _ := s.CreateCategory(ctx, "Frisbee")
	item, err := s.CreateItem(ctx, "Disc", "Ultimate-quality", c.ID, "alice")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Name != "Disc" {
		t.Errorf("expected name 'Disc', got %q", item.Name)
	}
	if item.OwnerID != "alice" {
		t.Errorf("expected owner 'alice', got %q", item.OwnerID)
	}
	if item.CategoryID != c.ID {
		t.Errorf("expected category %d, got %d", c.ID, item.CategoryID)
	}
}

func TestCreateItemValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, _ := s.CreateCategory(ctx, "Soccer")

	if _, err := s.CreateItem(ctx, "", "desc", c.ID, "alice"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}
	if _, err := s.CreateItem(ctx, "Ball", "", c.ID, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty owner, got %v", err)
	}
	if _, err := s.CreateItem(ctx, "Ball", "", 999, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown category, got %v", err)
	}
}

func TestListItemsByCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c1, _ := s.CreateCategory(ctx, "Soccer")
	c2, _ := s.CreateCategory(ctx, "Hockey")
	s.CreateItem(ctx, "Ball", "", c1.ID, "alice")
	s.CreateItem(ctx, "Cleats", "", c1.ID, "bob")
	s.CreateItem(ctx, "Stick", "", c2.ID, "alice")

	items, err := s.ListItems(ctx, c1.ID)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Ball" || items[1].Name != "Cleats" {
		t.Errorf("unexpected order: %q, %q", items[0].Name, items[1].Name)
	}
}

func TestUpdateItemPartialFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, _ := s.CreateCategory(ctx, "Skating")
	item, _ := s.CreateItem(ctx, "Skates", "size 42", c.ID, "alice")

	// Empty name keeps the stored name.
	updated, err := s.UpdateItem(ctx, item.ID, "", "size 43")
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "Skates" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}
	if updated.Description != "size 43" {
		t.Errorf("expected description 'size 43', got %q", updated.Description)
	}

	// Empty description keeps the stored description.
	updated, err = s.UpdateItem(ctx, item.ID, "Ice Skates", "")
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "Ice Skates" {
		t.Errorf("expected name 'Ice Skates', got %q", updated.Name)
	}
	if updated.Description != "size 43" {
		t.Errorf("expected description unchanged, got %q", updated.Description)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateItem(context.Background(), 42, "Name", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItemTwice(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, _ := s.CreateCategory(ctx, "Foosball")
	item, _ := s.CreateItem(ctx, "Table", "", c.ID, "alice")

	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if _, err := s.GetItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The second delete of the same id must report not found.
	if err := s.DeleteItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
