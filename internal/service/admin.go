package service

import (
	"context"
	"log/slog"

	"github.com/collet-david-pro/Voyages/internal/storage"
)

// AdminService exposes the destructive maintenance actions of the
// configuration page's danger zone.
type AdminService struct {
	store storage.Store
}

// NewAdminService creates an AdminService.
func NewAdminService(store storage.Store) *AdminService {
	return &AdminService{store: store}
}

// Reset drops every table and recreates the empty schema with its default
// rows. Uploaded files stay on disk, as the original database reset did.
func (s *AdminService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	slog.Warn("Database reset")
	return nil
}

// SeedDemo injects the demonstration data set.
func (s *AdminService) SeedDemo(ctx context.Context) error {
	if err := s.store.SeedDemo(ctx); err != nil {
		return err
	}
	slog.Info("Demo data seeded")
	return nil
}

// SeedRefundCase creates the minimal refund test scenario and returns the id
// of the created trip.
func (s *AdminService) SeedRefundCase(ctx context.Context) (int64, error) {
	tripID, err := s.store.SeedRefundCase(ctx)
	if err != nil {
		return 0, err
	}
	slog.Info("Refund test case seeded", "trip_id", tripID)
	return tripID, nil
}
