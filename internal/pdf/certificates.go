package pdf

import (
	"fmt"
	"math"

	"github.com/collet-david-pro/Voyages/internal/models"
)

// PaymentCertificate renders the attestation handed to families listing every
// recorded payment of one participant.
func (g *Generator) PaymentCertificate(lh Letterhead, trip models.Trip, participant models.Participant, payments []models.Payment) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 15)
	d.cell(0, 10, lh.name(), "", 1, "C", false)
	d.setFont("", 12)
	d.cell(0, 8, "Service de Gestion", "", 1, "C", false)
	d.pdf.Ln(4)

	d.setFont("B", 16)
	d.cell(0, 12, "Attestation de Paiement", "", 1, "C", false)
	d.pdf.Ln(6)

	d.setFont("", 12)
	d.cell(0, 8, fmt.Sprintf("Voyage : %s", trip.Destination), "", 1, "L", false)
	d.cell(0, 8, fmt.Sprintf("Date du voyage : %s", fmtDate(trip.DepartureDate)), "", 1, "L", false)
	d.cell(0, 8, fmt.Sprintf("Participant : %s", participant.FullName()), "", 1, "L", false)
	if participant.Kind == models.KindStudent {
		d.cell(0, 8, fmt.Sprintf("Classe : %s", participant.ClassName), "", 1, "L", false)
	}
	d.pdf.Ln(8)

	if lh.CertificateText != "" {
		d.setFont("B", 13)
		d.pdf.SetFillColor(headerFill, headerFill, headerFill)
		d.multiCell(d.contentWidth(), 10, lh.CertificateText, "1", "C", true)
		d.pdf.Ln(8)
	}

	cw := d.contentWidth()
	dateW := math.Round(cw * 0.20)
	modeW := math.Round(cw * 0.60)
	amountW := cw - dateW - modeW

	d.setFont("B", 11)
	d.cell(dateW, 10, "Date", "1", 0, "C", false)
	d.cell(modeW, 10, "Mode de paiement", "1", 0, "C", false)
	d.cell(amountW, 10, "Montant", "1", 1, "C", false)

	d.setFont("", 10)
	var total int64
	for _, p := range payments {
		total += p.Amount
		d.cell(dateW, 10, fmtDate(p.PaidOn), "1", 0, "C", false)
		d.cell(modeW, 10, p.ModeLabel, "1", 0, "L", false)
		d.cell(amountW, 10, d.euros(p.Amount), "1", 1, "R", false)
	}

	d.setFont("B", 10)
	d.cell(dateW+modeW, 10, "Total versé", "1", 0, "R", false)
	d.cell(amountW, 10, d.euros(total), "1", 1, "R", false)
	d.pdf.Ln(20)

	d.datedSignature(nowFn())
	return d.output()
}

// RefundCertificate attests that amount will be (or has been) returned to the
// participant. The caller decides the amount and guarantees it is positive.
func (g *Generator) RefundCertificate(lh Letterhead, trip models.Trip, participant models.Participant, amount int64) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 14)
	d.cell(0, 10, lh.name(), "", 1, "L", false)
	d.setFont("", 12)
	d.cell(0, 8, "Service de Gestion", "", 1, "L", false)
	d.pdf.Ln(10)

	d.setFont("B", 16)
	d.cell(0, 12, "Attestation de remboursement", "", 1, "C", false)
	d.pdf.Ln(6)

	d.setFont("", 12)
	d.multiCell(d.contentWidth(), 7, fmt.Sprintf(
		"Nous attestons que la somme de %s sera remboursée à Monsieur/Madame %s %s pour le voyage %s (départ %s).",
		d.euros(amount), participant.LastName, participant.FirstName, trip.Destination, fmtDate(trip.DepartureDate)), "", "L", false)
	d.pdf.Ln(8)
	d.multiCell(d.contentWidth(), 7,
		"Cette attestation certifie la prise en charge du remboursement par le service de gestion. Conservez-la pour vos archives.", "", "L", false)
	d.pdf.Ln(12)

	d.datedSignature(nowFn())
	return d.output()
}
