package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// ParticipantService manages the participant lifecycle: enrollment with the
// capacity rule, status changes and refund validation.
type ParticipantService struct {
	store storage.Store
}

// NewParticipantService creates a ParticipantService.
func NewParticipantService(store storage.Store) *ParticipantService {
	return &ParticipantService{store: store}
}

// Add enrolls a new participant on a trip. Students open a debt at the trip's
// price and fall on the waitlist once the expected headcount is reached;
// accompanying adults travel for free and are always enrolled.
func (s *ParticipantService) Add(ctx context.Context, tripID int64, kind models.ParticipantKind, lastName, firstName, classOrRole string) (*models.Participant, error) {
	if lastName == "" || firstName == "" {
		return nil, fmt.Errorf("%w: participant name is required", ErrInvalidInput)
	}

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	p := &models.Participant{
		TripID:    tripID,
		Kind:      kind,
		LastName:  lastName,
		FirstName: firstName,
		Status:    models.StatusEnrolled,
	}

	var initialAmount int64
	switch kind {
	case models.KindStudent:
		p.ClassName = classOrRole
		enrolled, err := s.store.CountEnrolled(ctx, tripID)
		if err != nil {
			return nil, err
		}
		p.Status = models.InitialStatus(enrolled, trip.ExpectedStudents)
		initialAmount = trip.StudentPrice
	case models.KindAdult:
		p.Role = classOrRole
	default:
		return nil, fmt.Errorf("%w: unknown participant kind %q", ErrInvalidInput, kind)
	}

	if err := s.store.CreateParticipant(ctx, p, initialAmount); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	slog.Info("Participant added",
		"participant_id", p.ID,
		"trip_id", tripID,
		"status", p.Status,
	)
	return p, nil
}

// ChangeStatus applies a requested lifecycle move. A cancellation request for
// a participant with money paid in lands on to_refund instead; the final move
// to cancelled then goes through ValidateRefund.
func (s *ParticipantService) ChangeStatus(ctx context.Context, participantID int64, requested models.Status) error {
	account, err := s.store.GetAccount(ctx, participantID)
	if err != nil {
		return err
	}

	next, err := models.Transition(account.Status, requested, account.Paid)
	if err != nil {
		return err
	}
	if next == account.Status {
		return nil
	}
	if err := s.store.SetParticipantStatus(ctx, participantID, next); err != nil {
		return fmt.Errorf("failed to set participant status: %w", err)
	}
	slog.Info("Participant status changed",
		"participant_id", participantID,
		"requested", requested,
		"status", next,
	)
	return nil
}

// ToggleFlag flips one of the cosmetic checkboxes and returns the new value.
func (s *ParticipantService) ToggleFlag(ctx context.Context, participantID int64, flag models.ParticipantFlag) (bool, error) {
	if !flag.Valid() {
		return false, fmt.Errorf("%w: unknown flag %q", ErrInvalidInput, flag)
	}
	return s.store.ToggleParticipantFlag(ctx, participantID, flag)
}

// ValidateRefund records the refund of a to_refund participant: exactly one
// payment of minus the refundable amount under the "Remboursement" mode, the
// validated flag, and the final move to cancelled. Calling it again once the
// flag is set does nothing.
func (s *ParticipantService) ValidateRefund(ctx context.Context, participantID int64) error {
	account, err := s.store.GetAccount(ctx, participantID)
	if err != nil {
		return err
	}
	if account.Status != models.StatusToRefund || account.RefundValidated {
		slog.Warn("Refund validation skipped",
			"participant_id", participantID,
			"status", account.Status,
			"already_validated", account.RefundValidated,
		)
		return nil
	}

	balance := accounting.ForAccount(*account)
	modeID, err := s.store.EnsurePaymentMode(ctx, models.ModeRefund)
	if err != nil {
		return err
	}
	if err := s.store.FinalizeRefund(ctx, participantID, account.DebtID, modeID,
		balance.Refundable, "Remboursement suite annulation"); err != nil {
		return fmt.Errorf("failed to finalize refund: %w", err)
	}
	slog.Info("Refund validated",
		"participant_id", participantID,
		"amount", balance.Refundable,
	)
	return nil
}

// Account returns the participant's joined row with its computed balance.
func (s *ParticipantService) Account(ctx context.Context, participantID int64) (*Account, error) {
	a, err := s.store.GetAccount(ctx, participantID)
	if err != nil {
		return nil, err
	}
	return &Account{ParticipantAccount: *a, Balance: accounting.ForAccount(*a)}, nil
}
