package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhudec/catalog/internal/model"
)

// CreateCategory creates a new category. Only used for seeding; there is no
// route that mutates categories.
func (s *Store) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name required", ErrValidation)
	}
	if len(name) > model.NameMaxLen {
		return nil, fmt.Errorf("%w: category name exceeds %d characters", ErrValidation, model.NameMaxLen)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name) VALUES (?)`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting category id: %w", err)
	}

	return s.GetCategory(ctx, id)
}

// GetCategory returns a category by ID.
func (s *Store) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	c := &model.Category{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// ListCategories returns all categories in id order, so repeated calls with
// no intervening writes produce the same sequence.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CountItems returns the number of items in a category.
func (s *Store) CountItems(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE category_id = ?`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}
