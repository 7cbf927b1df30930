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

const participantCols = `id, trip_id, kind, last_name, first_name, class_name,
	role, status, refund_validated, commitment_form, final_list`

func scanParticipant(row interface{ Scan(...any) error }, p *models.Participant) error {
	return row.Scan(&p.ID, &p.TripID, &p.Kind, &p.LastName, &p.FirstName,
		&p.ClassName, &p.Role, &p.Status, &p.RefundValidated,
		&p.CommitmentForm, &p.FinalList)
}

// GetParticipant retrieves a participant by id.
func (s *Store) GetParticipant(ctx context.Context, id int64) (*models.Participant, error) {
	p := &models.Participant{}
	err := scanParticipant(s.db.QueryRowContext(ctx,
		"SELECT "+participantCols+" FROM participants WHERE id = ?", id), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// CreateParticipant inserts the participant and its debt in one transaction;
// every participant owns exactly one debt from the moment it exists.
func (s *Store) CreateParticipant(ctx context.Context, p *models.Participant, initialAmount int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO participants (trip_id, kind, last_name, first_name, class_name, role, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.TripID, p.Kind, p.LastName, p.FirstName, p.ClassName, p.Role, p.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read participant id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO debts (participant_id, initial_amount) VALUES (?, ?)",
		p.ID, initialAmount,
	); err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const accountQuery = `
	SELECT p.id, p.trip_id, p.kind, p.last_name, p.first_name, p.class_name,
	       p.role, p.status, p.refund_validated, p.commitment_form, p.final_list,
	       d.id, d.initial_amount, d.discount_amount,
	       COALESCE((SELECT SUM(amount) FROM payments WHERE debt_id = d.id), 0)
	FROM participants p
	JOIN debts d ON d.participant_id = p.id`

func scanAccount(row interface{ Scan(...any) error }, a *models.ParticipantAccount) error {
	return row.Scan(&a.ID, &a.TripID, &a.Kind, &a.LastName, &a.FirstName,
		&a.ClassName, &a.Role, &a.Status, &a.RefundValidated,
		&a.CommitmentForm, &a.FinalList,
		&a.DebtID, &a.InitialAmount, &a.DiscountAmount, &a.Paid)
}

// ListAccounts returns the trip's participants joined with debt and payment
// sum, ordered by last then first name.
func (s *Store) ListAccounts(ctx context.Context, tripID int64) ([]models.ParticipantAccount, error) {
	rows, err := s.db.QueryContext(ctx,
		accountQuery+" WHERE p.trip_id = ? ORDER BY p.last_name, p.first_name", tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participant accounts: %w", err)
	}
	defer rows.Close()

	var out []models.ParticipantAccount
	for rows.Next() {
		var a models.ParticipantAccount
		if err := scanAccount(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan participant account: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participant accounts: %w", err)
	}
	return out, nil
}

// GetAccount retrieves one participant joined with its debt and payment sum.
func (s *Store) GetAccount(ctx context.Context, participantID int64) (*models.ParticipantAccount, error) {
	a := &models.ParticipantAccount{}
	err := scanAccount(s.db.QueryRowContext(ctx,
		accountQuery+" WHERE p.id = ?", participantID), a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant %d: %w", participantID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant account: %w", err)
	}
	return a, nil
}

// CountEnrolled counts the trip's participants with StatusEnrolled.
func (s *Store) CountEnrolled(ctx context.Context, tripID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(id) FROM participants WHERE trip_id = ? AND status = ?",
		tripID, models.StatusEnrolled,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrolled participants: %w", err)
	}
	return n, nil
}

// SetParticipantStatus writes the participant's status.
func (s *Store) SetParticipantStatus(ctx context.Context, id int64, status models.Status) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE participants SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update participant status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("participant %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ToggleParticipantFlag inverts one of the cosmetic checkbox flags and
// returns the new value.
func (s *Store) ToggleParticipantFlag(ctx context.Context, id int64, flag models.ParticipantFlag) (bool, error) {
	if !flag.Valid() {
		return false, fmt.Errorf("unknown participant flag %q", flag)
	}
	// flag is whitelisted above, interpolation is safe.
	col := string(flag)
	res, err := s.db.ExecContext(ctx,
		"UPDATE participants SET "+col+" = 1 - "+col+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to toggle %s: %w", col, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, fmt.Errorf("participant %d: %w", id, storage.ErrNotFound)
	}
	var v bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT "+col+" FROM participants WHERE id = ?", id).Scan(&v); err != nil {
		return false, fmt.Errorf("failed to read %s: %w", col, err)
	}
	return v, nil
}

// FinalizeRefund records the refund in one transaction: a negative payment
// for the refunded amount, the refund-validated flag and the terminal
// cancelled status.
func (s *Store) FinalizeRefund(ctx context.Context, participantID, debtID, modeID, amount int64, reference string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if amount > 0 {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO payments (debt_id, mode_id, amount, paid_on, reference)
			VALUES (?, ?, ?, ?, ?)`,
			debtID, modeID, -amount, fmtDate(time.Now()), reference,
		); err != nil {
			return fmt.Errorf("failed to insert refund payment: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE participants SET refund_validated = 1, status = ? WHERE id = ?",
		models.StatusCancelled, participantID,
	); err != nil {
		return fmt.Errorf("failed to mark refund validated: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
