package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
	"github.com/collet-david-pro/Voyages/internal/uploads"
)

// DocumentService stores uploaded trip documents and their metadata.
type DocumentService struct {
	store storage.Store
	files *uploads.Store
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(store storage.Store, files *uploads.Store) *DocumentService {
	return &DocumentService{store: store, files: files}
}

// Upload saves the file under the trip's upload directory with a generated
// name and records it.
func (s *DocumentService) Upload(ctx context.Context, tripID int64, fileName string, r io.Reader) (*models.Document, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}

	rel, err := s.files.SaveIn(strconv.FormatInt(tripID, 10), fileName, r)
	if err != nil {
		return nil, err
	}
	doc := &models.Document{
		TripID:     tripID,
		FileName:   fileName,
		StoredPath: rel,
		UploadedOn: time.Now(),
	}
	if err := s.store.CreateDocument(ctx, doc); err != nil {
		if rmErr := s.files.Remove(rel); rmErr != nil {
			slog.Warn("Failed to remove orphaned upload", "path", rel, "error", rmErr)
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}
	slog.Info("Document uploaded",
		"document_id", doc.ID,
		"trip_id", tripID,
		"file_name", fileName,
	)
	return doc, nil
}

// Resolve returns the document row and the absolute path of its file, for
// downloads.
func (s *DocumentService) Resolve(ctx context.Context, id int64) (*models.Document, string, error) {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return nil, "", err
	}
	path, err := s.files.Path(doc.StoredPath)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}

// Delete removes the document row, then its file. A failing file removal is
// logged; the row stays gone either way.
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	storedPath, err := s.store.DeleteDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(storedPath); err != nil {
		slog.Warn("Failed to remove document file", "path", storedPath, "error", err)
	}
	slog.Info("Document deleted", "document_id", id)
	return nil
}
