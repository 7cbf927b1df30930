// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/collet-david-pro/Voyages/internal/models"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (payment mode labels, budget category names).
var ErrDuplicate = errors.New("already exists")

// ErrInUse is returned when deleting a row that other rows still reference.
var ErrInUse = errors.New("still referenced")

// InstitutionImage identifies one of the three configurable letterhead images.
type InstitutionImage string

const (
	ImageLogo       InstitutionImage = "logo"
	ImageAuthorizer InstitutionImage = "authorizer"
	ImageSecretary  InstitutionImage = "secretary"
)

// TripStore covers trips and their index-page counters.
type TripStore interface {
	ListTrips(ctx context.Context) ([]models.TripSummary, error)
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)
	CreateTrip(ctx context.Context, t *models.Trip) error
	UpdateTrip(ctx context.Context, t *models.Trip) error

	// DeleteTrip removes the trip and, via cascade, all dependent rows. It
	// returns the stored paths of the trip's documents so the caller can
	// remove the files from disk.
	DeleteTrip(ctx context.Context, id int64) ([]string, error)
}

// ParticipantStore covers participants, their debts and lifecycle updates.
type ParticipantStore interface {
	GetParticipant(ctx context.Context, id int64) (*models.Participant, error)

	// CreateParticipant inserts the participant and opens its debt at
	// initialAmount in one transaction.
	CreateParticipant(ctx context.Context, p *models.Participant, initialAmount int64) error

	// ListAccounts returns the trip's participants joined with their debt and
	// payment sum, ordered by name.
	ListAccounts(ctx context.Context, tripID int64) ([]models.ParticipantAccount, error)

	// GetAccount is ListAccounts for a single participant.
	GetAccount(ctx context.Context, participantID int64) (*models.ParticipantAccount, error)

	CountEnrolled(ctx context.Context, tripID int64) (int, error)
	SetParticipantStatus(ctx context.Context, id int64, status models.Status) error
	ToggleParticipantFlag(ctx context.Context, id int64, flag models.ParticipantFlag) (bool, error)

	// FinalizeRefund records the refund of a to_refund participant in one
	// transaction: insert a payment of -amount against the debt, set the
	// refund-validated flag and move the participant to cancelled.
	FinalizeRefund(ctx context.Context, participantID, debtID, modeID, amount int64, reference string) error
}

// PaymentStore covers debts, payments and payment modes.
type PaymentStore interface {
	GetDebtByParticipant(ctx context.Context, participantID int64) (*models.Debt, error)
	SumPayments(ctx context.Context, debtID int64) (int64, error)
	ListPayments(ctx context.Context, debtID int64) ([]models.Payment, error)
	GetPayment(ctx context.Context, id int64) (*models.Payment, error)
	CreatePayment(ctx context.Context, p *models.Payment) error
	UpdatePayment(ctx context.Context, p *models.Payment) error
	DeletePayment(ctx context.Context, id int64) error

	ListPaymentModes(ctx context.Context) ([]models.PaymentMode, error)
	CreatePaymentMode(ctx context.Context, label string) error
	DeletePaymentMode(ctx context.Context, id int64) error

	// EnsurePaymentMode returns the id of the mode with the given label,
	// creating it if missing.
	EnsurePaymentMode(ctx context.Context, label string) (int64, error)
}

// SocialFundStore covers subsidy requests and their one-shot decisions.
type SocialFundStore interface {
	ListRequests(ctx context.Context, tripID int64) ([]models.SocialFundRequest, error)
	GetRequest(ctx context.Context, id int64) (*models.SocialFundRequest, error)
	CreateRequest(ctx context.Context, participantID, requestedAmount int64) error

	// RejectRequest marks the request rejected and processed. No financial
	// side effect.
	RejectRequest(ctx context.Context, id int64, decidedOn time.Time) error

	// ApplyGrant performs the approval bookkeeping in one transaction: mark
	// the request approved and processed with the granted amount, insert a
	// payment of +granted against the debt and raise the debt's discount by
	// the same amount.
	ApplyGrant(ctx context.Context, requestID, debtID, modeID, granted int64, decidedOn time.Time, reference string) error
}

// BudgetStore covers budget lines and their categories.
type BudgetStore interface {
	ListBudgetItems(ctx context.Context, tripID int64) ([]models.BudgetItem, error)
	CreateBudgetItem(ctx context.Context, it *models.BudgetItem) error

	// DeleteBudgetItem removes the line and returns the trip it belonged to.
	DeleteBudgetItem(ctx context.Context, id int64) (int64, error)

	ListBudgetCategories(ctx context.Context) ([]models.BudgetCategory, error)
	CreateBudgetCategory(ctx context.Context, name string) error
	DeleteBudgetCategory(ctx context.Context, id int64) error
}

// DocumentStore covers uploaded document rows (files live in uploads/).
type DocumentStore interface {
	ListDocuments(ctx context.Context, tripID int64) ([]models.Document, error)
	GetDocument(ctx context.Context, id int64) (*models.Document, error)
	CreateDocument(ctx context.Context, d *models.Document) error

	// DeleteDocument removes the row and returns the stored path so the
	// caller can remove the file from disk.
	DeleteDocument(ctx context.Context, id int64) (string, error)
}

// InstitutionStore covers the single-row letterhead configuration.
type InstitutionStore interface {
	GetInstitution(ctx context.Context) (*models.Institution, error)
	SaveInstitution(ctx context.Context, inst *models.Institution) error

	// SetInstitutionImage stores the new image path and returns the previous
	// one so the caller can remove the replaced file.
	SetInstitutionImage(ctx context.Context, image InstitutionImage, relPath string) (string, error)
}

// AdminStore covers the destructive maintenance operations.
type AdminStore interface {
	// Reset drops every table and recreates the schema.
	Reset(ctx context.Context) error

	// SeedDemo injects the demonstration dataset (two trips with randomized
	// participants, payments and statuses).
	SeedDemo(ctx context.Context) error

	// SeedRefundCase creates a minimal refund scenario (one trip, one paid
	// to_refund participant) and returns the trip id.
	SeedRefundCase(ctx context.Context) (int64, error)
}

// Store is the full persistence interface. The SQLite implementation is the
// only one shipped; the abstraction keeps the service layer free of SQL.
type Store interface {
	TripStore
	ParticipantStore
	PaymentStore
	SocialFundStore
	BudgetStore
	DocumentStore
	InstitutionStore
	AdminStore

	// Close releases the underlying database handle.
	Close() error
}
