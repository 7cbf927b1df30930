package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// ListTrips returns every trip with its enrolled and pending-refund counters,
// newest departure first.
func (s *Store) ListTrips(ctx context.Context) ([]models.TripSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.destination, t.departure_date, t.student_price,
		       t.expected_students, t.chaperone_count, t.nights,
		       COUNT(CASE WHEN p.status = ? THEN 1 END),
		       COUNT(CASE WHEN p.status = ? AND p.refund_validated = 0 THEN 1 END)
		FROM trips t
		LEFT JOIN participants p ON p.trip_id = t.id
		GROUP BY t.id
		ORDER BY t.departure_date DESC`,
		models.StatusEnrolled, models.StatusToRefund,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var out []models.TripSummary
	for rows.Next() {
		var ts models.TripSummary
		var departure string
		if err := rows.Scan(&ts.ID, &ts.Destination, &departure, &ts.StudentPrice,
			&ts.ExpectedStudents, &ts.ChaperoneCount, &ts.Nights,
			&ts.EnrolledCount, &ts.RefundableCount); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		ts.DepartureDate = parseDate(departure)
		out = append(out, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return out, nil
}

// GetTrip retrieves a trip by id.
func (s *Store) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	t := &models.Trip{}
	var departure string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, destination, departure_date, student_price,
		       expected_students, chaperone_count, nights
		FROM trips WHERE id = ?`, id,
	).Scan(&t.ID, &t.Destination, &departure, &t.StudentPrice,
		&t.ExpectedStudents, &t.ChaperoneCount, &t.Nights)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	t.DepartureDate = parseDate(departure)
	return t, nil
}

// CreateTrip inserts a trip and fills its ID.
func (s *Store) CreateTrip(ctx context.Context, t *models.Trip) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO trips (destination, departure_date, student_price,
		                   expected_students, chaperone_count, nights)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Destination, fmtDate(t.DepartureDate), t.StudentPrice,
		t.ExpectedStudents, t.ChaperoneCount, t.Nights,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}
	return nil
}

// UpdateTrip rewrites every editable field of a trip.
func (s *Store) UpdateTrip(ctx context.Context, t *models.Trip) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE trips
		SET destination = ?, departure_date = ?, student_price = ?,
		    expected_students = ?, chaperone_count = ?, nights = ?
		WHERE id = ?`,
		t.Destination, fmtDate(t.DepartureDate), t.StudentPrice,
		t.ExpectedStudents, t.ChaperoneCount, t.Nights, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("trip %d: %w", t.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteTrip removes the trip; dependent participants, debts, payments,
// budget items and documents go with it via cascade. The stored paths of the
// trip's documents are returned for file cleanup.
func (s *Store) DeleteTrip(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT stored_path FROM documents WHERE trip_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip documents: %w", err)
	}
	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan document path: %w", err)
		}
		paths = append(paths, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document paths: %w", err)
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("trip %d: %w", id, storage.ErrNotFound)
	}
	return paths, nil
}
