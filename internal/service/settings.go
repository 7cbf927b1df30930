package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
	"github.com/collet-david-pro/Voyages/internal/uploads"
)

// SettingsService manages the institution letterhead used on every PDF.
type SettingsService struct {
	store storage.Store
	files *uploads.Store
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(store storage.Store, files *uploads.Store) *SettingsService {
	return &SettingsService{store: store, files: files}
}

// Institution returns the letterhead configuration.
func (s *SettingsService) Institution(ctx context.Context) (*models.Institution, error) {
	return s.store.GetInstitution(ctx)
}

// Save rewrites the letterhead text fields.
func (s *SettingsService) Save(ctx context.Context, inst *models.Institution) error {
	if err := s.store.SaveInstitution(ctx, inst); err != nil {
		return err
	}
	slog.Info("Institution settings saved", "name", inst.Name)
	return nil
}

// SetImage stores a new logo or signature image under uploads/config/ and
// removes the replaced file, best-effort. The upload must decode as an image;
// a file the renderer cannot read would otherwise break every PDF export.
func (s *SettingsService) SetImage(ctx context.Context, img storage.InstitutionImage, fileName string, r io.Reader) error {
	if fileName == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read uploaded image: %w", err)
	}
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: file %q is not a readable image", ErrInvalidInput, fileName)
	}
	rel, err := s.files.SaveIn("config", fileName, bytes.NewReader(data))
	if err != nil {
		return err
	}
	previous, err := s.store.SetInstitutionImage(ctx, img, rel)
	if err != nil {
		if rmErr := s.files.Remove(rel); rmErr != nil {
			slog.Warn("Failed to remove orphaned image", "path", rel, "error", rmErr)
		}
		return err
	}
	if previous != "" && previous != rel {
		if err := s.files.Remove(previous); err != nil {
			slog.Warn("Failed to remove replaced image", "path", previous, "error", err)
		}
	}
	slog.Info("Institution image updated", "image", img, "path", rel)
	return nil
}
