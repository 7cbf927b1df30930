package pdf

import (
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
)

// ScheduleLetter renders the information letter proposing a payment schedule
// to families. installments holds the per-installment amounts in cents; an
// empty slice produces the letter without the schedule block.
func (g *Generator) ScheduleLetter(lh Letterhead, trip models.Trip, installments []int64) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 14)
	d.cell(0, 10, lh.name(), "", 1, "L", false)
	d.setFont("", 12)
	d.cell(0, 10, "Service de Gestion", "", 1, "L", false)
	d.pdf.Ln(15)

	d.setFont("B", 16)
	d.cell(0, 10, fmt.Sprintf("Information - Voyage Scolaire : %s", trip.Destination), "", 1, "C", false)
	d.pdf.Ln(10)

	d.setFont("", 12)
	d.multiCell(d.contentWidth(), 7, fmt.Sprintf(
		"Madame, Monsieur,\n\nNous avons le plaisir de vous informer de l'organisation d'un voyage scolaire à destination de %s, qui se déroulera à partir du %s.\n\nLe coût total de la participation pour chaque élève a été fixé à %s.",
		trip.Destination, fmtDate(trip.DepartureDate), d.euros(trip.StudentPrice)), "", "L", false)
	d.pdf.Ln(10)

	if len(installments) > 0 {
		d.setFont("B", 12)
		d.cell(0, 10, "Proposition d'échéancier de paiement :", "", 1, "L", false)
		d.setFont("", 12)
		for i, amount := range installments {
			d.cell(0, 7, fmt.Sprintf("- Echéance %d: %s", i+1, d.euros(amount)), "", 1, "L", false)
		}
		d.pdf.Ln(5)
		d.setFont("I", 10)
		d.multiCell(d.contentWidth(), 5,
			"Veuillez noter que les dates limites pour chaque paiement vous seront communiquées ultérieurement. N'hésitez pas à contacter le service de gestion pour toute question.", "", "L", false)
	}

	d.pdf.Ln(20)
	d.setFont("", 12)
	d.cell(0, 10, "Cordialement,", "", 1, "L", false)
	d.cell(0, 10, "L'équipe de gestion.", "", 1, "L", false)
	d.pdf.Ln(10)

	d.datedSignature(nowFn())
	return d.output()
}
