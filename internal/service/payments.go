package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// Ledger is everything the participant payments page shows: the account with
// its balance, the payment history and the available modes.
type Ledger struct {
	Trip     models.Trip
	Account  Account
	Payments []models.Payment
	Modes    []models.PaymentMode
}

// PaymentService manages payments against participant debts and the payment
// mode list.
type PaymentService struct {
	store storage.Store
}

// NewPaymentService creates a PaymentService.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store}
}

// LedgerFor assembles the payments page of one participant.
func (s *PaymentService) LedgerFor(ctx context.Context, participantID int64) (*Ledger, error) {
	account, err := s.store.GetAccount(ctx, participantID)
	if err != nil {
		return nil, err
	}
	trip, err := s.store.GetTrip(ctx, account.TripID)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.ListPayments(ctx, account.DebtID)
	if err != nil {
		return nil, err
	}
	modes, err := s.store.ListPaymentModes(ctx)
	if err != nil {
		return nil, err
	}
	return &Ledger{
		Trip:     *trip,
		Account:  Account{ParticipantAccount: *account, Balance: accounting.ForAccount(*account)},
		Payments: payments,
		Modes:    modes,
	}, nil
}

// Add records a payment on the participant's debt.
func (s *PaymentService) Add(ctx context.Context, participantID, modeID, amount int64, paidOn time.Time, reference string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}
	if paidOn.IsZero() {
		paidOn = time.Now()
	}
	debt, err := s.store.GetDebtByParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	p := &models.Payment{
		DebtID:    debt.ID,
		ModeID:    modeID,
		Amount:    amount,
		PaidOn:    paidOn,
		Reference: reference,
	}
	if err := s.store.CreatePayment(ctx, p); err != nil {
		return fmt.Errorf("failed to add payment: %w", err)
	}
	slog.Info("Payment added",
		"payment_id", p.ID,
		"participant_id", participantID,
		"amount", amount,
	)
	return nil
}

// Get retrieves a payment for the edit form.
func (s *PaymentService) Get(ctx context.Context, id int64) (*models.Payment, error) {
	return s.store.GetPayment(ctx, id)
}

// Update rewrites an existing payment.
func (s *PaymentService) Update(ctx context.Context, p *models.Payment) error {
	if p.Amount == 0 {
		return fmt.Errorf("%w: payment amount must not be zero", ErrInvalidInput)
	}
	if err := s.store.UpdatePayment(ctx, p); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	slog.Info("Payment updated", "payment_id", p.ID, "amount", p.Amount)
	return nil
}

// Delete removes a payment.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeletePayment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	slog.Info("Payment deleted", "payment_id", id)
	return nil
}

// Modes returns the payment mode list.
func (s *PaymentService) Modes(ctx context.Context) ([]models.PaymentMode, error) {
	return s.store.ListPaymentModes(ctx)
}

// AddMode inserts a payment mode. A duplicate label is silently ignored.
func (s *PaymentService) AddMode(ctx context.Context, label string) error {
	if label == "" {
		return fmt.Errorf("%w: mode label is required", ErrInvalidInput)
	}
	err := s.store.CreatePaymentMode(ctx, label)
	if errors.Is(err, storage.ErrDuplicate) {
		slog.Warn("Payment mode already exists", "label", label)
		return nil
	}
	return err
}

// DeleteMode removes a payment mode. A mode still referenced by payments is
// kept; the attempt is only logged.
func (s *PaymentService) DeleteMode(ctx context.Context, id int64) error {
	err := s.store.DeletePaymentMode(ctx, id)
	if errors.Is(err, storage.ErrInUse) {
		slog.Warn("Payment mode is still in use", "mode_id", id)
		return nil
	}
	return err
}
