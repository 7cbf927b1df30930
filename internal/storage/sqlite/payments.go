package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// GetDebtByParticipant retrieves the participant's (unique) debt.
func (s *Store) GetDebtByParticipant(ctx context.Context, participantID int64) (*models.Debt, error) {
	d := &models.Debt{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, participant_id, initial_amount, discount_amount
		FROM debts WHERE participant_id = ?`, participantID,
	).Scan(&d.ID, &d.ParticipantID, &d.InitialAmount, &d.DiscountAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("debt of participant %d: %w", participantID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return d, nil
}

// SumPayments returns the signed payment total of a debt, zero when none.
func (s *Store) SumPayments(ctx context.Context, debtID int64) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE debt_id = ?", debtID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}

// ListPayments returns the debt's payments with their mode label, newest first.
func (s *Store) ListPayments(ctx context.Context, debtID int64) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.debt_id, p.mode_id, m.label, p.amount, p.paid_on, p.reference
		FROM payments p
		JOIN payment_modes m ON m.id = p.mode_id
		WHERE p.debt_id = ?
		ORDER BY p.paid_on DESC, p.id DESC`, debtID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var out []models.Payment
	for rows.Next() {
		var p models.Payment
		var paidOn string
		if err := rows.Scan(&p.ID, &p.DebtID, &p.ModeID, &p.ModeLabel,
			&p.Amount, &paidOn, &p.Reference); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.PaidOn = parseDate(paidOn)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return out, nil
}

// GetPayment retrieves a payment by id.
func (s *Store) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	p := &models.Payment{}
	var paidOn string
	err := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.debt_id, p.mode_id, m.label, p.amount, p.paid_on, p.reference
		FROM payments p
		JOIN payment_modes m ON m.id = p.mode_id
		WHERE p.id = ?`, id,
	).Scan(&p.ID, &p.DebtID, &p.ModeID, &p.ModeLabel, &p.Amount, &paidOn, &p.Reference)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	p.PaidOn = parseDate(paidOn)
	return p, nil
}

// CreatePayment inserts a payment and fills its ID.
func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (debt_id, mode_id, amount, paid_on, reference)
		VALUES (?, ?, ?, ?, ?)`,
		p.DebtID, p.ModeID, p.Amount, fmtDate(p.PaidOn), p.Reference,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read payment id: %w", err)
	}
	return nil
}

// UpdatePayment rewrites amount, mode, date and reference of a payment.
func (s *Store) UpdatePayment(ctx context.Context, p *models.Payment) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE payments SET amount = ?, mode_id = ?, paid_on = ?, reference = ?
		WHERE id = ?`,
		p.Amount, p.ModeID, fmtDate(p.PaidOn), p.Reference, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment %d: %w", p.ID, storage.ErrNotFound)
	}
	return nil
}

// DeletePayment removes a payment.
func (s *Store) DeletePayment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ListPaymentModes returns every payment mode ordered by label.
func (s *Store) ListPaymentModes(ctx context.Context) ([]models.PaymentMode, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, label FROM payment_modes ORDER BY label")
	if err != nil {
		return nil, fmt.Errorf("failed to list payment modes: %w", err)
	}
	defer rows.Close()

	var out []models.PaymentMode
	for rows.Next() {
		var m models.PaymentMode
		if err := rows.Scan(&m.ID, &m.Label); err != nil {
			return nil, fmt.Errorf("failed to scan payment mode: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment modes: %w", err)
	}
	return out, nil
}

// CreatePaymentMode inserts a mode; a duplicate label yields ErrDuplicate.
func (s *Store) CreatePaymentMode(ctx context.Context, label string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO payment_modes (label) VALUES (?)", label)
	return mapConstraint(err)
}

// DeletePaymentMode removes a mode; a mode still referenced by payments
// yields ErrInUse.
func (s *Store) DeletePaymentMode(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM payment_modes WHERE id = ?", id)
	return mapConstraint(err)
}

// EnsurePaymentMode returns the id of the mode with the given label, creating
// the row if it does not exist yet.
func (s *Store) EnsurePaymentMode(ctx context.Context, label string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM payment_modes WHERE label = ?", label).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up payment mode: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payment_modes (label) VALUES (?)", label)
	if err != nil {
		return 0, fmt.Errorf("failed to insert payment mode: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read payment mode id: %w", err)
	}
	return id, nil
}
