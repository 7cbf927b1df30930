// Package accounting holds the pure bookkeeping arithmetic: participant
// balances, budget aggregation and installment schedules. Everything works on
// integer cents; no I/O happens here.
package accounting

import (
	"fmt"
	"strings"

	"github.com/collet-david-pro/Voyages/internal/models"
)

// Balance is the financial position of one participant.
type Balance struct {
	// Owed = debt initial amount - discount.
	Owed int64

	// Paid is the cumulative payment sum, refund entries included.
	Paid int64

	// Remaining = max(0, Owed-Paid). Overpayment never shows as negative.
	Remaining int64

	// Refundable is the amount to give back: the full paid sum, but only
	// while the participant is to_refund and the refund has not been
	// validated yet. Zero otherwise.
	Refundable int64
}

// Compute derives the balance of a participant from its debt, payment sum and
// lifecycle state. This is the single balance formula used by every view and
// PDF.
func Compute(initial, discount, paid int64, status models.Status, refundValidated bool) Balance {
	b := Balance{
		Owed: initial - discount,
		Paid: paid,
	}
	if r := b.Owed - paid; r > 0 {
		b.Remaining = r
	}
	if status == models.StatusToRefund && !refundValidated && paid > 0 {
		b.Refundable = paid
	}
	return b
}

// ForAccount is Compute applied to a joined participant row.
func ForAccount(a models.ParticipantAccount) Balance {
	return Compute(a.InitialAmount, a.DiscountAmount, a.Paid, a.Status, a.RefundValidated)
}

// RefundCertificateAmount picks the amount printed on a refund attestation.
// Once a refund entry exists (negative payment flagged "Remboursement") the
// attested amount is what was actually given back; before that it is the sum
// paid in. Zero means there is nothing to attest.
func RefundCertificateAmount(payments []models.Payment) int64 {
	var paidIn, refunded int64
	for _, p := range payments {
		if p.Amount > 0 {
			paidIn += p.Amount
		} else if strings.Contains(p.Reference, "Remboursement") {
			refunded -= p.Amount
		}
	}
	if refunded > 0 {
		return refunded
	}
	return paidIn
}

// Euros formats cents as a euro amount with two decimals, e.g. 62000 -> "620.00".
func Euros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
