package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/service"
)

func ledgerURL(participantID int64) string {
	return fmt.Sprintf("/participants/%d/paiements", participantID)
}

func (s *Server) ledger(c *fiber.Ctx) error {
	ledger, err := s.svc.Payments.LedgerFor(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return c.Render("participant_payments", fiber.Map{
		"Title":  fmt.Sprintf("Paiements - %s", ledger.Account.FullName()),
		"Ledger": ledger,
	})
}

func (s *Server) addPayment(c *fiber.Ctx) error {
	participantID := paramID(c, "id")
	err := s.svc.Payments.Add(c.UserContext(), participantID,
		int64(formInt(c, "mode_paiement")), formCents(c, "montant"),
		formDate(c, "date"), c.FormValue("reference"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return c.Redirect(ledgerURL(participantID))
}

func (s *Server) paymentEditForm(c *fiber.Ctx) error {
	payment, err := s.svc.Payments.Get(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	modes, err := s.svc.Payments.Modes(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("payment_edit", fiber.Map{
		"Title":   "Modifier le paiement",
		"Payment": payment,
		"Modes":   modes,
	})
}

func (s *Server) updatePayment(c *fiber.Ctx) error {
	payment, err := s.svc.Payments.Get(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	payment.ModeID = int64(formInt(c, "mode_paiement"))
	payment.Amount = formCents(c, "montant")
	if d := formDate(c, "date"); !d.IsZero() {
		payment.PaidOn = d
	}
	payment.Reference = c.FormValue("reference")
	if err := s.svc.Payments.Update(c.UserContext(), payment); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return back(c)
}

func (s *Server) deletePayment(c *fiber.Ctx) error {
	if err := s.svc.Payments.Delete(c.UserContext(), paramID(c, "id")); err != nil {
		return err
	}
	return back(c)
}

func (s *Server) addPaymentMode(c *fiber.Ctx) error {
	if err := s.svc.Payments.AddMode(c.UserContext(), c.FormValue("libelle")); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return back(c)
}

func (s *Server) deletePaymentMode(c *fiber.Ctx) error {
	if err := s.svc.Payments.DeleteMode(c.UserContext(), paramID(c, "id")); err != nil {
		return err
	}
	return back(c)
}
