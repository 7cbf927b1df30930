package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/pdf"
	"github.com/collet-david-pro/Voyages/internal/storage"
	"github.com/collet-david-pro/Voyages/internal/uploads"
)

// ErrNothingToCertify is returned when a refund attestation is requested for
// a participant without any payment on record.
var ErrNothingToCertify = errors.New("no payment to certify")

// Export is a rendered document ready to be sent as a download.
type Export struct {
	FileName string
	Data     []byte
}

// ExportService renders the printable documents. The generator probes the
// working directory, fonts/ and uploads/config/ for a unicode TTF once at
// startup.
type ExportService struct {
	store storage.Store
	files *uploads.Store
	gen   *pdf.Generator
}

func NewExportService(store storage.Store, files *uploads.Store) *ExportService {
	gen := pdf.NewGenerator(".", "fonts", filepath.Join(files.Root(), "config"))
	return &ExportService{store: store, files: files, gen: gen}
}

// letterhead assembles the institution identity with absolute image paths.
func (s *ExportService) letterhead(ctx context.Context) (pdf.Letterhead, error) {
	inst, err := s.store.GetInstitution(ctx)
	if err != nil {
		return pdf.Letterhead{}, err
	}
	abs := func(rel string) string {
		if rel == "" {
			return ""
		}
		path, err := s.files.Path(rel)
		if err != nil {
			return ""
		}
		return path
	}
	return pdf.Letterhead{
		Name:                inst.Name,
		AuthorizerName:      inst.AuthorizerName,
		SecretaryName:       inst.SecretaryName,
		SignatureCity:       inst.SignatureCity,
		CertificateText:     inst.CertificateText,
		LogoPath:            abs(inst.LogoPath),
		AuthorizerImagePath: abs(inst.AuthorizerImage),
		SecretaryImagePath:  abs(inst.SecretaryImage),
	}, nil
}

// EnrolledList renders the short roster of enrolled participants.
func (s *ExportService) EnrolledList(ctx context.Context, tripID int64) (*Export, error) {
	lh, trip, accounts, err := s.tripData(ctx, tripID)
	if err != nil {
		return nil, err
	}
	data, err := s.gen.EnrolledList(lh, *trip, accounts)
	if err != nil {
		return nil, err
	}
	return &Export{FileName: fmt.Sprintf("liste_inscrits_%d.pdf", trip.ID), Data: data}, nil
}

// EditedList renders the roster with operator-edited paid amounts.
func (s *ExportService) EditedList(ctx context.Context, tripID int64, rows []pdf.EditedRow) (*Export, error) {
	lh, err := s.letterhead(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	data, err := s.gen.EditedList(lh, *trip, rows)
	if err != nil {
		return nil, err
	}
	return &Export{FileName: fmt.Sprintf("liste_inscrits_%d.pdf", trip.ID), Data: data}, nil
}

// FilteredList renders the landscape participant overview. An unknown filter
// value falls back to showing everyone.
func (s *ExportService) FilteredList(ctx context.Context, tripID int64, filter pdf.ListFilter) (*Export, error) {
	switch filter {
	case pdf.FilterPaid, pdf.FilterUnpaid:
	default:
		filter = pdf.FilterAll
	}
	lh, trip, accounts, err := s.tripData(ctx, tripID)
	if err != nil {
		return nil, err
	}
	data, err := s.gen.FilteredList(lh, *trip, accounts, filter)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("liste_participants_%s_%s.pdf", uploads.SanitizeFilename(trip.Destination), filter)
	return &Export{FileName: name, Data: data}, nil
}

// PaymentCertificate renders the attestation listing a participant's payments.
func (s *ExportService) PaymentCertificate(ctx context.Context, participantID int64) (*Export, error) {
	lh, trip, participant, payments, err := s.participantData(ctx, participantID)
	if err != nil {
		return nil, err
	}
	// Stored newest first; the certificate reads chronologically.
	slices.Reverse(payments)
	data, err := s.gen.PaymentCertificate(lh, *trip, *participant, payments)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("attestation_%s_%s.pdf",
		uploads.SanitizeFilename(participant.LastName), uploads.SanitizeFilename(participant.FirstName))
	return &Export{FileName: name, Data: data}, nil
}

// RefundCertificate renders the refund attestation. Before the refund entry
// exists it attests the paid-in sum, after it the refunded amount.
func (s *ExportService) RefundCertificate(ctx context.Context, participantID int64) (*Export, error) {
	lh, trip, participant, payments, err := s.participantData(ctx, participantID)
	if err != nil {
		return nil, err
	}
	amount := accounting.RefundCertificateAmount(payments)
	if amount <= 0 {
		return nil, ErrNothingToCertify
	}
	data, err := s.gen.RefundCertificate(lh, *trip, *participant, amount)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("attestation_remboursement_%s_%s.pdf",
		uploads.SanitizeFilename(participant.LastName), uploads.SanitizeFilename(participant.FirstName))
	return &Export{FileName: name, Data: data}, nil
}

// SocialFundNotice renders the decision letter for a decided request.
func (s *ExportService) SocialFundNotice(ctx context.Context, requestID int64) (*Export, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status == models.RequestPending {
		return nil, fmt.Errorf("%w: request %d is still pending", ErrInvalidInput, requestID)
	}
	participant, err := s.store.GetParticipant(ctx, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	trip, err := s.store.GetTrip(ctx, participant.TripID)
	if err != nil {
		return nil, err
	}
	lh, err := s.letterhead(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.gen.SocialFundNotice(lh, *trip, *participant, *req)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("attestation_fs_%s_%s.pdf",
		uploads.SanitizeFilename(participant.LastName), uploads.SanitizeFilename(participant.FirstName))
	return &Export{FileName: name, Data: data}, nil
}

// BudgetReport renders the provisional budget PDF.
func (s *ExportService) BudgetReport(ctx context.Context, tripID int64) (*Export, error) {
	lh, err := s.letterhead(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListBudgetItems(ctx, tripID)
	if err != nil {
		return nil, err
	}
	var revenues, expenses []models.BudgetItem
	for _, it := range items {
		if it.Kind == models.BudgetRevenue {
			revenues = append(revenues, it)
		} else {
			expenses = append(expenses, it)
		}
	}
	data, err := s.gen.BudgetReport(lh, *trip, revenues, expenses)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("budget_%s.pdf", uploads.SanitizeFilename(trip.Destination))
	return &Export{FileName: name, Data: data}, nil
}

// ScheduleSpec selects how the payment schedule of the letter is split.
type ScheduleSpec struct {
	// ByCount is true to split the price into Value installments, false to
	// split it into installments of Value cents each.
	ByCount bool
	Value   int64
}

// ScheduleLetter renders the information letter with a proposed payment
// schedule. A zero Value produces the letter without the schedule block.
func (s *ExportService) ScheduleLetter(ctx context.Context, tripID int64, spec ScheduleSpec) (*Export, error) {
	lh, err := s.letterhead(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	var installments []int64
	if spec.Value > 0 {
		if spec.ByCount {
			installments, err = accounting.InstallmentsByCount(trip.StudentPrice, int(spec.Value))
		} else {
			installments, err = accounting.InstallmentsByAmount(trip.StudentPrice, spec.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	data, err := s.gen.ScheduleLetter(lh, *trip, installments)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("echeancier_%s.pdf", uploads.SanitizeFilename(trip.Destination))
	return &Export{FileName: name, Data: data}, nil
}

func (s *ExportService) tripData(ctx context.Context, tripID int64) (pdf.Letterhead, *models.Trip, []models.ParticipantAccount, error) {
	lh, err := s.letterhead(ctx)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, err
	}
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, tripID)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, err
	}
	return lh, trip, accounts, nil
}

func (s *ExportService) participantData(ctx context.Context, participantID int64) (pdf.Letterhead, *models.Trip, *models.Participant, []models.Payment, error) {
	lh, err := s.letterhead(ctx)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, nil, err
	}
	participant, err := s.store.GetParticipant(ctx, participantID)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, nil, err
	}
	trip, err := s.store.GetTrip(ctx, participant.TripID)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, nil, err
	}
	debt, err := s.store.GetDebtByParticipant(ctx, participant.ID)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, nil, err
	}
	payments, err := s.store.ListPayments(ctx, debt.ID)
	if err != nil {
		return pdf.Letterhead{}, nil, nil, nil, err
	}
	return lh, trip, participant, payments, nil
}
