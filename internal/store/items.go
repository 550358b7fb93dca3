package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhudec/catalog/internal/model"
)

// CreateItem creates a new item owned by ownerID. The category must exist;
// the check and the insert run in one short-lived transaction so a
// concurrently deleted category cannot slip through.
func (s *Store) CreateItem(ctx context.Context, name, description string, categoryID int64, ownerID string) (*model.Item, error) {
	if err := validateItemFields(name, description); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: item name required", ErrValidation)
	}
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner required", ErrValidation)
	}
	if len(ownerID) > model.OwnerMaxLen {
		return nil, fmt.Errorf("%w: owner exceeds %d characters", ErrValidation, model.OwnerMaxLen)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM categories WHERE id = ?`, categoryID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("checking category: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO items (name, description, category_id, owner_id) VALUES (?, ?, ?, ?)`,
		name, description, categoryID, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item: %w", err)
	}

	return s.GetItem(ctx, id)
}

// GetItem returns an item by ID.
func (s *Store) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, category_id, owner_id, created_at, updated_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &item.CategoryID, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	return item, nil
}

// ListItems returns all items in a category in id order.
func (s *Store) ListItems(ctx context.Context, categoryID int64) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, category_id, owner_id, created_at, updated_at
		 FROM items WHERE category_id = ? ORDER BY id`, categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.CategoryID, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem overwrites an item's name and description with the non-empty
// supplied values; an empty field keeps the stored value. The read and the
// write share a transaction so a concurrent writer blocks on the busy
// timeout instead of interleaving.
func (s *Store) UpdateItem(ctx context.Context, id int64, name, description string) (*model.Item, error) {
	if err := validateItemFields(name, description); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var current model.Item
	var currentDesc sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT name, description FROM items WHERE id = ?`, id,
	).Scan(&current.Name, &currentDesc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading item: %w", err)
	}

	if name == "" {
		name = current.Name
	}
	if description == "" {
		description = currentDesc.String
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, description, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item update: %w", err)
	}

	return s.GetItem(ctx, id)
}

// DeleteItem removes an item. Deleting an id that does not exist (including
// an already-deleted one) reports ErrNotFound, never silent success.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: item %d", ErrNotFound, id)
	}
	return nil
}

// validateItemFields checks length limits shared by create and update.
func validateItemFields(name, description string) error {
	if len(name) > model.NameMaxLen {
		return fmt.Errorf("%w: item name exceeds %d characters", ErrValidation, model.NameMaxLen)
	}
	if len(description) > model.DescriptionMaxLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, model.DescriptionMaxLen)
	}
	return nil
}
