package models

import "time"

// Well-known payment mode labels created on demand by the services that need
// them. They are regular rows in payment_modes, only their labels are fixed.
const (
	ModeRefund     = "Remboursement"
	ModeSocialFund = "Fonds Social"
)

// Debt is the amount a participant owes for a trip. Exactly one debt exists
// per participant, opened at the trip's student price.
type Debt struct {
	ID            int64
	ParticipantID int64

	// InitialAmount is the opening amount owed in cents.
	InitialAmount int64

	// DiscountAmount accumulates waivers, in particular granted social-fund
	// aid. The owed arithmetic lives in the accounting package.
	DiscountAmount int64
}

// PaymentMode is a way of paying (cash, cheque, transfer, ...). Labels are
// unique.
type PaymentMode struct {
	ID    int64
	Label string
}

// Payment is a signed monetary movement against a debt: positive amounts are
// money received, negative amounts money returned. A refund is a negative
// payment whose reference flags it as such.
type Payment struct {
	ID     int64
	DebtID int64
	ModeID int64

	// ModeLabel is filled on reads that join payment_modes.
	ModeLabel string

	// Amount in cents, signed.
	Amount int64

	PaidOn    time.Time
	Reference string
}
