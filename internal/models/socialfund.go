package models

import "time"

// RequestStatus is the decision state of a social-fund request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Label returns the French display name.
func (s RequestStatus) Label() string {
	switch s {
	case RequestPending:
		return "En cours"
	case RequestApproved:
		return "Validée"
	case RequestRejected:
		return "Refusée"
	}
	return string(s)
}

// SocialFundRequest is a subsidy application for one participant. A request
// is decided (approved or rejected) exactly once: the Processed flag blocks
// any further decision.
type SocialFundRequest struct {
	ID            int64
	ParticipantID int64

	// ParticipantLastName and ParticipantFirstName are filled on reads that
	// join participants.
	ParticipantLastName  string
	ParticipantFirstName string

	RequestedAmount int64
	GrantedAmount   int64

	// DecidedOn is the commission date, zero while pending.
	DecidedOn time.Time

	Status    RequestStatus
	Processed bool
}
