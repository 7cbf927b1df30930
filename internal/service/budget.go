package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// BudgetPage is the data of a trip's budget view.
type BudgetPage struct {
	Trip       models.Trip
	Expenses   []models.BudgetItem
	Revenues   []models.BudgetItem
	Categories []models.BudgetCategory
	Totals     accounting.BudgetTotals
	Indicators accounting.BudgetIndicators
}

// BudgetService manages budget lines and categories.
type BudgetService struct {
	store storage.Store
}

// NewBudgetService creates a BudgetService.
func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store}
}

// Page assembles the budget view of one trip.
func (s *BudgetService) Page(ctx context.Context, tripID int64) (*BudgetPage, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListBudgetItems(ctx, tripID)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.ListBudgetCategories(ctx)
	if err != nil {
		return nil, err
	}

	page := &BudgetPage{Trip: *trip, Categories: categories}
	for _, it := range items {
		switch it.Kind {
		case models.BudgetExpense:
			page.Expenses = append(page.Expenses, it)
		case models.BudgetRevenue:
			page.Revenues = append(page.Revenues, it)
		}
	}
	page.Totals = accounting.SumBudget(items)
	page.Indicators = accounting.Indicators(page.Totals.Expenses, trip.ExpectedStudents, trip.Nights)
	return page, nil
}

// AddItem inserts a budget line after validation.
func (s *BudgetService) AddItem(ctx context.Context, item *models.BudgetItem) error {
	if !item.Kind.Valid() {
		return fmt.Errorf("%w: unknown budget kind %q", ErrInvalidInput, item.Kind)
	}
	if item.Amount < 0 {
		return fmt.Errorf("%w: budget amount must not be negative", ErrInvalidInput)
	}
	if item.Description == "" {
		return fmt.Errorf("%w: budget description is required", ErrInvalidInput)
	}
	if err := s.store.CreateBudgetItem(ctx, item); err != nil {
		return fmt.Errorf("failed to add budget item: %w", err)
	}
	slog.Info("Budget item added",
		"item_id", item.ID,
		"trip_id", item.TripID,
		"kind", item.Kind,
		"amount", item.Amount,
	)
	return nil
}

// DeleteItem removes a budget line and returns its trip for the redirect.
func (s *BudgetService) DeleteItem(ctx context.Context, id int64) (int64, error) {
	tripID, err := s.store.DeleteBudgetItem(ctx, id)
	if err != nil {
		return 0, err
	}
	slog.Info("Budget item deleted", "item_id", id, "trip_id", tripID)
	return tripID, nil
}

// Categories returns the budget category list.
func (s *BudgetService) Categories(ctx context.Context) ([]models.BudgetCategory, error) {
	return s.store.ListBudgetCategories(ctx)
}

// AddCategory inserts a category. A duplicate name is silently ignored.
func (s *BudgetService) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	err := s.store.CreateBudgetCategory(ctx, name)
	if errors.Is(err, storage.ErrDuplicate) {
		slog.Warn("Budget category already exists", "name", name)
		return nil
	}
	return err
}

// DeleteCategory removes a category. A category still referenced by budget
// lines is kept; the attempt is only logged.
func (s *BudgetService) DeleteCategory(ctx context.Context, id int64) error {
	err := s.store.DeleteBudgetCategory(ctx, id)
	if errors.Is(err, storage.ErrInUse) {
		slog.Warn("Budget category is still in use", "category_id", id)
		return nil
	}
	return err
}
