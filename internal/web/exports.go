package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/pdf"
	"github.com/collet-david-pro/Voyages/internal/service"
)

func (s *Server) exportEnrolledList(c *fiber.Ctx) error {
	exp, err := s.svc.Exports.EnrolledList(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return sendExport(c, exp, "liste_inscrits")
}

// exportEditedList renders the roster with the paid amounts as posted from
// the editable list form, one participant_id / total_paye pair per row.
func (s *Server) exportEditedList(c *fiber.Ctx) error {
	tripID := paramID(c, "id")
	args := c.Request().PostArgs()
	ids := args.PeekMulti("participant_id")
	totals := args.PeekMulti("total_paye")

	rows := make([]pdf.EditedRow, 0, len(ids))
	for i, raw := range ids {
		id, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			continue
		}
		account, err := s.svc.Participants.Account(c.UserContext(), id)
		if err != nil {
			continue
		}
		var paid int64
		if i < len(totals) {
			paid = eurosToCents(string(totals[i]))
		}
		rows = append(rows, pdf.EditedRow{
			LastName:  account.LastName,
			FirstName: account.FirstName,
			ClassName: account.ClassName,
			Initial:   account.InitialAmount,
			Discount:  account.DiscountAmount,
			Paid:      paid,
		})
	}

	exp, err := s.svc.Exports.EditedList(c.UserContext(), tripID, rows)
	if err != nil {
		return err
	}
	return sendExport(c, exp, "liste_editee")
}

func (s *Server) exportFilteredList(c *fiber.Ctx) error {
	filter := pdf.ListFilter(c.FormValue("filtre", string(pdf.FilterAll)))
	exp, err := s.svc.Exports.FilteredList(c.UserContext(), paramID(c, "id"), filter)
	if err != nil {
		return err
	}
	return sendExport(c, exp, "liste_participants")
}

func (s *Server) exportPaymentCertificate(c *fiber.Ctx) error {
	exp, err := s.svc.Exports.PaymentCertificate(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return sendExport(c, exp, "attestation_paiement")
}

func (s *Server) exportRefundCertificate(c *fiber.Ctx) error {
	exp, err := s.svc.Exports.RefundCertificate(c.UserContext(), paramID(c, "id"))
	if err != nil {
		if errors.Is(err, service.ErrNothingToCertify) {
			return c.Status(fiber.StatusBadRequest).Render("message", fiber.Map{
				"Title":   "Attestation indisponible",
				"Message": "Aucun paiement trouvé à attester pour ce participant.",
			})
		}
		return err
	}
	return sendExport(c, exp, "attestation_remboursement")
}

func (s *Server) exportSocialFundNotice(c *fiber.Ctx) error {
	exp, err := s.svc.Exports.SocialFundNotice(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return sendExport(c, exp, "notification_fs")
}

func (s *Server) exportBudget(c *fiber.Ctx) error {
	exp, err := s.svc.Exports.BudgetReport(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return sendExport(c, exp, "budget")
}

func (s *Server) exportSchedule(c *fiber.Ctx) error {
	spec := service.ScheduleSpec{
		ByCount: c.FormValue("type_echeancier", "nombre") == "nombre",
	}
	if spec.ByCount {
		spec.Value = int64(formInt(c, "nombre_echeances"))
	} else {
		spec.Value = formCents(c, "montant_echeance")
	}
	exp, err := s.svc.Exports.ScheduleLetter(c.UserContext(), paramID(c, "id"), spec)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return sendExport(c, exp, "echeancier")
}
