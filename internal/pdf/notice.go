package pdf

import (
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
)

// SocialFundNotice renders the decision letter mailed to a family after the
// social fund commission ruled on its request. Pending requests have no
// notice; the caller only passes decided ones.
func (g *Generator) SocialFundNotice(lh Letterhead, trip models.Trip, participant models.Participant, req models.SocialFundRequest) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 14)
	d.cell(0, 10, lh.name(), "", 1, "L", false)
	d.setFont("", 12)
	d.cell(0, 10, "Service de Gestion", "", 1, "L", false)
	d.pdf.Ln(15)

	d.setFont("B", 16)
	d.cell(0, 10, "Notification de Décision - Fonds Sociaux", "", 1, "C", false)
	d.pdf.Ln(10)

	d.setFont("", 12)
	about := participant.FullName()
	if participant.Kind == models.KindStudent {
		about = fmt.Sprintf("Élève %s %s (Classe de %s)", participant.FirstName, participant.LastName, participant.ClassName)
	}
	d.multiCell(d.contentWidth(), 8, fmt.Sprintf("Concerne : %s", about), "", "L", false)
	d.pdf.Ln(2)
	d.multiCell(d.contentWidth(), 8, fmt.Sprintf("Voyage : %s (Départ le %s)", trip.Destination, fmtDate(trip.DepartureDate)), "", "L", false)
	d.pdf.Ln(15)

	d.multiCell(d.contentWidth(), 7, "Madame, Monsieur,", "", "L", false)
	d.pdf.Ln(5)

	commission := "non spécifiée"
	if !req.DecidedOn.IsZero() {
		commission = req.DecidedOn.Format("02/01/2006")
	}
	switch req.Status {
	case models.RequestApproved:
		d.multiCell(d.contentWidth(), 7, fmt.Sprintf(
			"Suite à la commission du %s, nous avons le plaisir de vous informer qu'une aide financière de %s vous a été accordée pour la participation au voyage scolaire.",
			commission, d.euros(req.GrantedAmount)), "", "L", false)
		d.pdf.Ln(10)
		d.multiCell(d.contentWidth(), 7, "Cette somme sera directement déduite du montant total à votre charge.", "", "L", false)
	case models.RequestRejected:
		d.multiCell(d.contentWidth(), 7, fmt.Sprintf(
			"Suite à la commission du %s, nous sommes au regret de vous informer que votre demande d'aide financière n'a pas pu recevoir un avis favorable.",
			commission), "", "L", false)
		d.pdf.Ln(10)
	}
	d.pdf.Ln(10)

	d.datedSignature(nowFn())
	return d.output()
}
