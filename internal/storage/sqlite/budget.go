package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// ListBudgetItems returns a trip's budget lines, expenses before revenues,
// grouped by category.
func (s *Store) ListBudgetItems(ctx context.Context, tripID int64) ([]models.BudgetItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.trip_id, b.kind, b.category_id, c.name, b.description, b.amount
		FROM budget_items b
		JOIN budget_categories c ON c.id = b.category_id
		WHERE b.trip_id = ?
		ORDER BY b.kind, c.name, b.id`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	defer rows.Close()

	var out []models.BudgetItem
	for rows.Next() {
		var b models.BudgetItem
		if err := rows.Scan(&b.ID, &b.TripID, &b.Kind, &b.CategoryID,
			&b.CategoryName, &b.Description, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget item: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget items: %w", err)
	}
	return out, nil
}

// CreateBudgetItem inserts a budget line and fills its ID.
func (s *Store) CreateBudgetItem(ctx context.Context, b *models.BudgetItem) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_items (trip_id, kind, category_id, description, amount)
		VALUES (?, ?, ?, ?, ?)`,
		b.TripID, b.Kind, b.CategoryID, b.Description, b.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget item: %w", mapConstraint(err))
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read budget item id: %w", err)
	}
	return nil
}

// DeleteBudgetItem removes a budget line and returns the trip it belonged to.
func (s *Store) DeleteBudgetItem(ctx context.Context, id int64) (int64, error) {
	var tripID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT trip_id FROM budget_items WHERE id = ?", id).Scan(&tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("budget item %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up budget item: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM budget_items WHERE id = ?", id); err != nil {
		return 0, fmt.Errorf("failed to delete budget item: %w", err)
	}
	return tripID, nil
}

// ListBudgetCategories returns every budget category ordered by name.
func (s *Store) ListBudgetCategories(ctx context.Context) ([]models.BudgetCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM budget_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list budget categories: %w", err)
	}
	defer rows.Close()

	var out []models.BudgetCategory
	for rows.Next() {
		var c models.BudgetCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget categories: %w", err)
	}
	return out, nil
}

// CreateBudgetCategory inserts a category; a duplicate name yields ErrDuplicate.
func (s *Store) CreateBudgetCategory(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO budget_categories (name) VALUES (?)", name)
	return mapConstraint(err)
}

// DeleteBudgetCategory removes a category; a category still referenced by
// budget lines yields ErrInUse.
func (s *Store) DeleteBudgetCategory(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM budget_categories WHERE id = ?", id)
	return mapConstraint(err)
}
