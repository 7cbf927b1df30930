package pdf

import (
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/models"
)

type tableColor struct{ r, g, b int }

var (
	revenueGreen = tableColor{223, 240, 216}
	expenseRed   = tableColor{248, 215, 218}
)

func (d *doc) budgetTable(title string, items []models.BudgetItem, c tableColor) {
	d.setFont("B", 12)
	d.pdf.SetFillColor(c.r, c.g, c.b)
	d.cell(0, 10, title, "1", 1, "C", true)
	d.setFont("B", 10)
	d.cell(130, 7, "Description", "1", 0, "L", false)
	d.cell(60, 7, "Montant", "1", 1, "C", false)
	d.setFont("", 10)
	for _, it := range items {
		d.cell(130, 7, fmt.Sprintf("%s - %s", it.CategoryName, it.Description), "1", 0, "L", false)
		d.cell(60, 7, d.euros(it.Amount), "1", 1, "R", false)
	}
}

// BudgetReport renders the provisional budget: revenue and expense tables,
// the balance line and the per-head cost indicators.
func (g *Generator) BudgetReport(lh Letterhead, trip models.Trip, revenues, expenses []models.BudgetItem) ([]byte, error) {
	d := g.newDoc("P", lh)
	d.drawLogo()

	d.setFont("B", 16)
	d.cell(0, 10, fmt.Sprintf("Budget prévisionnel - Voyage %s", trip.Destination), "", 1, "C", false)
	d.pdf.Ln(10)

	totals := accounting.SumBudget(append(append([]models.BudgetItem{}, revenues...), expenses...))
	d.budgetTable(fmt.Sprintf("Recettes (%s)", d.euros(totals.Revenues)), revenues, revenueGreen)
	d.pdf.Ln(5)
	d.budgetTable(fmt.Sprintf("Dépenses (%s)", d.euros(totals.Expenses)), expenses, expenseRed)
	d.pdf.Ln(10)

	d.setFont("B", 14)
	balance := d.euros(totals.Balance)
	if totals.Balance >= 0 {
		balance = "+" + balance
	}
	d.cell(0, 10, fmt.Sprintf("Solde prévisionnel : %s", balance), "1", 1, "C", false)
	d.pdf.Ln(10)

	ind := accounting.Indicators(totals.Expenses, trip.ExpectedStudents, trip.Nights)
	d.setFont("B", 12)
	d.cell(0, 10, "Indicateurs Clés", "", 1, "L", false)
	d.setFont("", 10)
	d.multiCell(d.contentWidth(), 7, fmt.Sprintf(
		"- Coût total par élève : %s\n- Coût total par accompagnateur : %s\n- Coût moyen par participant (tous inclus) : %s\n- Coût moyen par nuit et par participant : %s",
		d.euros(ind.PerStudent), d.euros(ind.PerChaperone), d.euros(ind.PerParticipant), d.euros(ind.PerNightPerStudent)), "", "L", false)

	d.pdf.Ln(8)
	d.datedSignature(nowFn())
	return d.output()
}
