package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// ListDocuments returns a trip's documents, newest upload first.
func (s *Store) ListDocuments(ctx context.Context, tripID int64) ([]models.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trip_id, file_name, stored_path, uploaded_on
		FROM documents WHERE trip_id = ?
		ORDER BY uploaded_on DESC, id DESC`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var out []models.Document
	for rows.Next() {
		var d models.Document
		var uploadedOn string
		if err := rows.Scan(&d.ID, &d.TripID, &d.FileName, &d.StoredPath, &uploadedOn); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.UploadedOn = parseDate(uploadedOn)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return out, nil
}

// GetDocument retrieves a document by id.
func (s *Store) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	d := &models.Document{}
	var uploadedOn string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, trip_id, file_name, stored_path, uploaded_on
		FROM documents WHERE id = ?`, id,
	).Scan(&d.ID, &d.TripID, &d.FileName, &d.StoredPath, &uploadedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	d.UploadedOn = parseDate(uploadedOn)
	return d, nil
}

// CreateDocument records an uploaded file and fills its ID.
func (s *Store) CreateDocument(ctx context.Context, d *models.Document) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (trip_id, file_name, stored_path, uploaded_on)
		VALUES (?, ?, ?, ?)`,
		d.TripID, d.FileName, d.StoredPath, fmtDate(d.UploadedOn),
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	d.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read document id: %w", err)
	}
	return nil
}

// DeleteDocument removes a document row and returns the stored path so the
// caller can unlink the file afterwards.
func (s *Store) DeleteDocument(ctx context.Context, id int64) (string, error) {
	var storedPath string
	err := s.db.QueryRowContext(ctx,
		"SELECT stored_path FROM documents WHERE id = ?", id).Scan(&storedPath)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("document %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up document: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = ?", id); err != nil {
		return "", fmt.Errorf("failed to delete document: %w", err)
	}
	return storedPath, nil
}
