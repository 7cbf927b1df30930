package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// SocialFundPage is the data of a trip's social fund view: the pending and
// decided requests plus the participant accounts to pick from.
type SocialFundPage struct {
	Trip     models.Trip
	Requests []models.SocialFundRequest
	Accounts []Account
}

// SocialFundService manages subsidy requests and their one-shot decisions.
type SocialFundService struct {
	store storage.Store
}

// NewSocialFundService creates a SocialFundService.
func NewSocialFundService(store storage.Store) *SocialFundService {
	return &SocialFundService{store: store}
}

// Page assembles the social fund view of one trip.
func (s *SocialFundService) Page(ctx context.Context, tripID int64) (*SocialFundPage, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	requests, err := s.store.ListRequests(ctx, tripID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, tripID)
	if err != nil {
		return nil, err
	}
	page := &SocialFundPage{Trip: *trip, Requests: requests}
	for _, a := range accounts {
		page.Accounts = append(page.Accounts, Account{
			ParticipantAccount: a,
			Balance:            accounting.ForAccount(a),
		})
	}
	return page, nil
}

// Request records a pending subsidy request for a participant.
func (s *SocialFundService) Request(ctx context.Context, participantID, requestedAmount int64) error {
	if requestedAmount <= 0 {
		return fmt.Errorf("%w: requested amount must be positive", ErrInvalidInput)
	}
	if _, err := s.store.GetParticipant(ctx, participantID); err != nil {
		return err
	}
	if err := s.store.CreateRequest(ctx, participantID, requestedAmount); err != nil {
		return err
	}
	slog.Info("Social fund request created",
		"participant_id", participantID,
		"requested_amount", requestedAmount,
	)
	return nil
}

// Decide settles a pending request exactly once. A rejection has no financial
// effect. An approval with a positive grant G performs the dual bookkeeping:
// a payment of +G under the "Fonds Social" mode and a discount increase of G
// on the participant's debt, so the family owes less while the account shows
// the subsidy received. Deciding an already processed request does nothing.
func (s *SocialFundService) Decide(ctx context.Context, requestID int64, approve bool, granted int64, decidedOn time.Time) error {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Processed {
		slog.Warn("Social fund request already decided", "request_id", requestID)
		return nil
	}
	if decidedOn.IsZero() {
		decidedOn = time.Now()
	}

	if !approve {
		if err := s.store.RejectRequest(ctx, requestID, decidedOn); err != nil {
			return err
		}
		slog.Info("Social fund request rejected", "request_id", requestID)
		return nil
	}

	if granted < 0 {
		return fmt.Errorf("%w: granted amount must not be negative", ErrInvalidInput)
	}
	debt, err := s.store.GetDebtByParticipant(ctx, req.ParticipantID)
	if err != nil {
		return err
	}
	modeID, err := s.store.EnsurePaymentMode(ctx, models.ModeSocialFund)
	if err != nil {
		return err
	}
	reference := fmt.Sprintf("Commission FS du %s", decidedOn.Format("02/01/2006"))
	if err := s.store.ApplyGrant(ctx, requestID, debt.ID, modeID, granted, decidedOn, reference); err != nil {
		return err
	}
	slog.Info("Social fund request approved",
		"request_id", requestID,
		"granted_amount", granted,
	)
	return nil
}
