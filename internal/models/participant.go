package models

import (
	"errors"
	"fmt"
)

// ParticipantKind distinguishes paying students from accompanying adults.
type ParticipantKind string

const (
	KindStudent ParticipantKind = "student"
	KindAdult   ParticipantKind = "adult"
)

// Status is the enrollment lifecycle state of a participant.
type Status string

const (
	StatusEnrolled   Status = "enrolled"
	StatusWaitlisted Status = "waitlisted"
	StatusToRefund   Status = "to_refund"
	StatusCancelled  Status = "cancelled"
)

// ErrInvalidTransition is returned by Transition for moves the lifecycle does
// not allow, including any move out of StatusCancelled.
var ErrInvalidTransition = errors.New("invalid status transition")

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusEnrolled, StatusWaitlisted, StatusToRefund, StatusCancelled:
		return true
	}
	return false
}

// Label returns the French display name used in views and PDFs.
func (s Status) Label() string {
	switch s {
	case StatusEnrolled:
		return "Inscrit"
	case StatusWaitlisted:
		return "Liste d'attente"
	case StatusToRefund:
		return "À rembourser"
	case StatusCancelled:
		return "Annulé"
	}
	return string(s)
}

// InitialStatus decides the status of a newly added participant: enrolled
// while the trip still has capacity, waitlisted once the expected student
// count is reached.
func InitialStatus(enrolledCount, expectedStudents int) Status {
	if enrolledCount < expectedStudents {
		return StatusEnrolled
	}
	return StatusWaitlisted
}

// Transition resolves a requested status change against the lifecycle rules.
// It is the single place encoding them:
//
//   - cancelled is terminal; nothing leaves it;
//   - a cancellation request for a participant with money paid in is
//     overridden to to_refund so the refund is processed first (the move to
//     cancelled then happens through refund validation);
//   - every other move between the four states is allowed.
//
// totalPaid is the participant's cumulative payment sum in cents.
func Transition(current, requested Status, totalPaid int64) (Status, error) {
	if !requested.Valid() {
		return current, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, requested)
	}
	if current == StatusCancelled && requested != StatusCancelled {
		return current, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, current)
	}
	if requested == StatusCancelled && totalPaid > 0 {
		return StatusToRefund, nil
	}
	return requested, nil
}

// ParticipantFlag names the cosmetic checkbox fields that can be toggled from
// the trip detail view. They carry no financial meaning.
type ParticipantFlag string

const (
	FlagCommitmentForm ParticipantFlag = "commitment_form"
	FlagFinalList      ParticipantFlag = "final_list"
)

// Valid reports whether f is a known toggleable flag.
func (f ParticipantFlag) Valid() bool {
	return f == FlagCommitmentForm || f == FlagFinalList
}

// Participant is a student or accompanying adult attached to a trip.
type Participant struct {
	ID     int64
	TripID int64
	Kind   ParticipantKind

	LastName  string
	FirstName string

	// ClassName is set for students, Role for accompanying adults.
	ClassName string
	Role      string

	Status Status

	// RefundValidated is set once the refund of a to_refund participant has
	// been recorded; it makes refund validation idempotent.
	RefundValidated bool

	CommitmentForm bool
	FinalList      bool
}

// FullName returns "First Last" for letters and certificates.
// Value receiver so templates can call it on participant values.
func (p Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ClassOrRole returns the field relevant for the participant's kind.
func (p Participant) ClassOrRole() string {
	if p.Kind == KindStudent {
		return p.ClassName
	}
	return p.Role
}

// ParticipantAccount is a participant joined with its debt, as fetched for
// trip listings and PDF exports.
type ParticipantAccount struct {
	Participant

	DebtID         int64
	InitialAmount  int64
	DiscountAmount int64

	// Paid is the cumulative payment sum in cents (refund entries included).
	Paid int64
}
