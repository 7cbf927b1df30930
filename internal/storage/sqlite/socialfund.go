package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

const requestCols = `r.id, r.participant_id, p.last_name, p.first_name,
	r.requested_amount, r.granted_amount, r.decided_on, r.status, r.processed`

func scanRequest(row interface{ Scan(...any) error }) (*models.SocialFundRequest, error) {
	r := &models.SocialFundRequest{}
	var decidedOn string
	err := row.Scan(&r.ID, &r.ParticipantID, &r.ParticipantLastName,
		&r.ParticipantFirstName, &r.RequestedAmount, &r.GrantedAmount,
		&decidedOn, &r.Status, &r.Processed)
	if err != nil {
		return nil, err
	}
	r.DecidedOn = parseDate(decidedOn)
	return r, nil
}

// ListRequests returns a trip's social fund requests, pending first, then by
// participant name.
func (s *Store) ListRequests(ctx context.Context, tripID int64) ([]models.SocialFundRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+requestCols+`
		FROM social_fund_requests r
		JOIN participants p ON p.id = r.participant_id
		WHERE p.trip_id = ?
		ORDER BY r.status = 'pending' DESC, p.last_name, p.first_name`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list social fund requests: %w", err)
	}
	defer rows.Close()

	var out []models.SocialFundRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan social fund request: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate social fund requests: %w", err)
	}
	return out, nil
}

// GetRequest retrieves a social fund request by id.
func (s *Store) GetRequest(ctx context.Context, id int64) (*models.SocialFundRequest, error) {
	r, err := scanRequest(s.db.QueryRowContext(ctx, `
		SELECT `+requestCols+`
		FROM social_fund_requests r
		JOIN participants p ON p.id = r.participant_id
		WHERE r.id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("social fund request %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get social fund request: %w", err)
	}
	return r, nil
}

// CreateRequest records a pending request for a participant.
func (s *Store) CreateRequest(ctx context.Context, participantID, requestedAmount int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO social_fund_requests (participant_id, requested_amount, status)
		VALUES (?, ?, 'pending')`, participantID, requestedAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert social fund request: %w", err)
	}
	return nil
}

// RejectRequest marks a pending request rejected with a zero grant.
func (s *Store) RejectRequest(ctx context.Context, id int64, decidedOn time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE social_fund_requests
		SET status = 'rejected', granted_amount = 0, decided_on = ?, processed = 1
		WHERE id = ? AND processed = 0`, fmtDate(decidedOn), id,
	)
	if err != nil {
		return fmt.Errorf("failed to reject social fund request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("social fund request %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ApplyGrant approves a request and applies the dual bookkeeping entry in a
// single transaction: the grant is inserted as a payment on the debt and the
// debt's discount grows by the same amount, so the family owes less while the
// account shows the subsidy received. A zero grant marks the request approved
// without financial effect.
func (s *Store) ApplyGrant(ctx context.Context, requestID, debtID, modeID, granted int64, decidedOn time.Time, reference string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE social_fund_requests
		SET status = 'approved', granted_amount = ?, decided_on = ?, processed = 1
		WHERE id = ? AND processed = 0`,
		granted, fmtDate(decidedOn), requestID,
	)
	if err != nil {
		return fmt.Errorf("failed to approve social fund request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("social fund request %d: %w", requestID, storage.ErrNotFound)
	}

	if granted > 0 {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO payments (debt_id, mode_id, amount, paid_on, reference)
			VALUES (?, ?, ?, ?, ?)`,
			debtID, modeID, granted, fmtDate(decidedOn), reference,
		); err != nil {
			return fmt.Errorf("failed to insert grant payment: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE debts SET discount_amount = discount_amount + ? WHERE id = ?`,
			granted, debtID,
		); err != nil {
			return fmt.Errorf("failed to apply grant discount: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit grant: %w", err)
	}
	return nil
}
