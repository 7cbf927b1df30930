package pdf

import (
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
)

// ListFilter selects which participants appear on the filtered list.
type ListFilter string

const (
	FilterAll    ListFilter = "tous"
	FilterPaid   ListFilter = "paye"
	FilterUnpaid ListFilter = "non_paye"
)

func (f ListFilter) title() string {
	switch f {
	case FilterPaid:
		return " (Paiements soldés)"
	case FilterUnpaid:
		return " (Paiements en attente)"
	}
	return " (Tous les statuts)"
}

const headerFill = 240

// tableHeader draws one row of filled header cells and remembers how to
// redraw it after a page break.
func (d *doc) tableHeader(widths []float64, headers []string) func() {
	draw := func() {
		d.setFont("B", 11)
		d.pdf.SetFillColor(headerFill, headerFill, headerFill)
		for i, h := range headers {
			d.cell(widths[i], 8, h, "1", 0, "C", true)
		}
		d.pdf.Ln(-1)
	}
	draw()
	return draw
}

// breakPage starts a new page when fewer than 20mm remain, redrawing the
// table header so every page stays readable on its own.
func (d *doc) breakPage(redrawHeader func(), bodyFont func()) {
	_, pageH := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	if d.pdf.GetY() <= pageH-bottom-20 {
		return
	}
	d.pdf.AddPage()
	redrawHeader()
	bodyFont()
}

// EnrolledList renders the short roster handed to chaperones: every enrolled
// participant with the amount still due.
func (g *Generator) EnrolledList(lh Letterhead, trip models.Trip, accounts []models.ParticipantAccount) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 14)
	d.cell(0, 8, fmt.Sprintf("Liste des inscrits - %s", trip.Destination), "", 1, "C", false)
	d.pdf.Ln(3)

	cw := d.contentWidth()
	widths := []float64{cw * 0.35, cw * 0.30, cw * 0.15, cw * 0.20}
	redraw := d.tableHeader(widths, []string{"Nom", "Prénom", "Classe", "Reste à payer (EUR)"})

	bodyFont := func() { d.setFont("", 11) }
	bodyFont()
	for i := range accounts {
		a := &accounts[i]
		if a.Status != models.StatusEnrolled {
			continue
		}
		d.breakPage(redraw, bodyFont)
		balance := accounting.ForAccount(*a)
		d.cell(widths[0], 7, a.LastName, "1", 0, "L", false)
		d.cell(widths[1], 7, a.FirstName, "1", 0, "L", false)
		d.cell(widths[2], 7, a.ClassName, "1", 0, "C", false)
		d.cell(widths[3], 7, d.euros(balance.Remaining), "1", 1, "R", false)
	}
	return d.output()
}

// EditedRow is one line of the hand-edited roster export, with the paid
// amount as typed in the form rather than as recorded in the ledger.
type EditedRow struct {
	LastName  string
	FirstName string
	ClassName string

	Initial  int64
	Discount int64
	Paid     int64
}

// Remaining clamps the recomputed amount due at zero.
func (r EditedRow) Remaining() int64 {
	if rest := r.Initial - r.Discount - r.Paid; rest > 0 {
		return rest
	}
	return 0
}

// EditedList renders the roster with operator-edited paid amounts. Name
// columns wrap over several lines when needed.
func (g *Generator) EditedList(lh Letterhead, trip models.Trip, rows []EditedRow) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 14)
	d.cell(0, 8, fmt.Sprintf("Liste éditée des inscrits - %s", trip.Destination), "", 1, "C", false)
	d.pdf.Ln(2)

	cw := d.contentWidth()
	widths := []float64{cw * 0.30, cw * 0.25, cw * 0.10, cw * 0.10, cw * 0.08, cw * 0.09, cw * 0.08}
	redraw := d.tableHeader(widths, []string{
		"Nom", "Prénom", "Classe", "Montant initial", "Remise", "Montant payé", "Reste à payer",
	})

	bodyFont := func() { d.setFont("", 10) }
	bodyFont()
	left, _, _, _ := d.pdf.GetMargins()
	for _, r := range rows {
		d.breakPage(redraw, bodyFont)

		top := d.pdf.GetY()
		d.pdf.SetXY(left, top)
		d.multiCell(widths[0], 6, r.LastName, "1", "L", false)
		bottom := d.pdf.GetY()
		d.pdf.SetXY(left+widths[0], top)
		d.multiCell(widths[1], 6, r.FirstName, "1", "L", false)
		if y := d.pdf.GetY(); y > bottom {
			bottom = y
		}
		rowH := bottom - top

		x := left + widths[0] + widths[1]
		d.pdf.SetXY(x, top)
		d.cell(widths[2], rowH, r.ClassName, "1", 0, "C", false)
		d.cell(widths[3], rowH, d.euros(r.Initial), "1", 0, "R", false)
		d.cell(widths[4], rowH, d.euros(r.Discount), "1", 0, "R", false)
		d.cell(widths[5], rowH, d.euros(r.Paid), "1", 0, "R", false)
		d.cell(widths[6], rowH, d.euros(r.Remaining()), "1", 0, "R", false)
		d.pdf.SetXY(left, bottom)
	}
	return d.output()
}

// FilteredList renders the landscape overview of every participant matching
// the filter: all of them, or only enrolled ones whose payments are settled
// or still pending.
func (g *Generator) FilteredList(lh Letterhead, trip models.Trip, accounts []models.ParticipantAccount, filter ListFilter) ([]byte, error) {
	d := g.newDoc("L", lh)
	d.drawLogo()

	d.setFont("B", 16)
	d.cell(0, 10, fmt.Sprintf("Liste des participants - Voyage %s", trip.Destination), "", 1, "C", false)
	d.setFont("I", 12)
	d.cell(0, 10, fmt.Sprintf("Filtre appliqué :%s", filter.title()), "", 1, "C", false)
	d.pdf.Ln(10)

	widths := []float64{40, 40, 30, 40, 35, 35}
	redraw := d.tableHeader(widths, []string{
		"Nom", "Prénom", "Classe/Fonction", "Statut", "Total Payé", "Reste à Payer",
	})

	bodyFont := func() { d.setFont("", 10) }
	bodyFont()
	for i := range accounts {
		a := &accounts[i]
		balance := accounting.ForAccount(*a)
		switch filter {
		case FilterPaid:
			if a.Status != models.StatusEnrolled || balance.Remaining > 0 {
				continue
			}
		case FilterUnpaid:
			if a.Status != models.StatusEnrolled || balance.Remaining == 0 {
				continue
			}
		}
		d.breakPage(redraw, bodyFont)
		d.cell(widths[0], 10, a.LastName, "1", 0, "L", false)
		d.cell(widths[1], 10, a.FirstName, "1", 0, "L", false)
		d.cell(widths[2], 10, a.ClassOrRole(), "1", 0, "C", false)
		d.cell(widths[3], 10, a.Status.Label(), "1", 0, "C", false)
		d.cell(widths[4], 10, d.euros(balance.Paid), "1", 0, "R", false)
		d.cell(widths[5], 10, d.euros(balance.Remaining), "1", 1, "R", false)
	}

	d.pdf.Ln(8)
	d.datedSignature(nowFn())
	return d.output()
}
