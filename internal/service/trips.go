// Package service implements the application rules on top of the storage
// layer: trip capacity, the participant lifecycle, the refund and social fund
// bookkeeping, budgets, documents and configuration.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
	"github.com/collet-david-pro/Voyages/internal/uploads"
)

// ErrInvalidInput covers malformed or incomplete form values; handlers
// translate it into a silent redirect back.
var ErrInvalidInput = errors.New("invalid input")

// Account is a participant row with its computed balance, ready for views
// and PDF tables.
type Account struct {
	models.ParticipantAccount
	Balance accounting.Balance
}

// TripTotals aggregates a trip's accounts for the detail page footer.
// Cancelled participants are excluded from the expectation figures; Collected
// sums every payment, refunds included.
type TripTotals struct {
	Expected  int64
	Collected int64
	Remaining int64
}

// TripDetail is everything the trip detail page shows.
type TripDetail struct {
	Trip      models.Trip
	Accounts  []Account
	Totals    TripTotals
	Documents []models.Document
}

// TripService manages trips and assembles their detail pages.
type TripService struct {
	store storage.Store
	files *uploads.Store
}

// NewTripService creates a TripService.
func NewTripService(store storage.Store, files *uploads.Store) *TripService {
	return &TripService{store: store, files: files}
}

// List returns every trip with its index-page counters.
func (s *TripService) List(ctx context.Context) ([]models.TripSummary, error) {
	return s.store.ListTrips(ctx)
}

// Get retrieves one trip.
func (s *TripService) Get(ctx context.Context, id int64) (*models.Trip, error) {
	return s.store.GetTrip(ctx, id)
}

// Create validates and inserts a new trip.
func (s *TripService) Create(ctx context.Context, t *models.Trip) error {
	if err := validateTrip(t); err != nil {
		return err
	}
	if err := s.store.CreateTrip(ctx, t); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	slog.Info("Trip created", "trip_id", t.ID, "destination", t.Destination)
	return nil
}

// Update validates and saves an existing trip.
func (s *TripService) Update(ctx context.Context, t *models.Trip) error {
	if err := validateTrip(t); err != nil {
		return err
	}
	if err := s.store.UpdateTrip(ctx, t); err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	slog.Info("Trip updated", "trip_id", t.ID)
	return nil
}

// Delete removes the trip with all its dependent rows, then removes the
// trip's uploaded files. File removal is best-effort; a leftover file on disk
// never blocks the deletion.
func (s *TripService) Delete(ctx context.Context, id int64) error {
	paths, err := s.store.DeleteTrip(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	for _, p := range paths {
		if err := s.files.Remove(p); err != nil {
			slog.Warn("Failed to remove trip document file", "path", p, "error", err)
		}
	}
	slog.Info("Trip deleted", "trip_id", id, "documents_removed", len(paths))
	return nil
}

// Detail assembles the trip detail page: participants with balances, the
// totals row and the document list.
func (s *TripService) Detail(ctx context.Context, id int64) (*TripDetail, error) {
	trip, err := s.store.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.ListDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &TripDetail{Trip: *trip, Documents: docs}
	for _, a := range accounts {
		acc := Account{ParticipantAccount: a, Balance: accounting.ForAccount(a)}
		d.Accounts = append(d.Accounts, acc)
		d.Totals.Collected += acc.Balance.Paid
		if a.Status != models.StatusCancelled {
			d.Totals.Expected += acc.Balance.Owed
			d.Totals.Remaining += acc.Balance.Remaining
		}
	}
	return d, nil
}

func validateTrip(t *models.Trip) error {
	if t.Destination == "" || t.DepartureDate.IsZero() {
		return fmt.Errorf("%w: destination and departure date are required", ErrInvalidInput)
	}
	if t.StudentPrice < 0 || t.ExpectedStudents < 0 || t.ChaperoneCount < 0 || t.Nights < 0 {
		return fmt.Errorf("%w: negative trip figures", ErrInvalidInput)
	}
	return nil
}
