package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/service"
)

func (s *Server) socialFundPage(c *fiber.Ctx) error {
	page, err := s.svc.SocialFund.Page(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return c.Render("social_fund", fiber.Map{
		"Title": fmt.Sprintf("Fonds social - %s", page.Trip.Destination),
		"Page":  page,
	})
}

func (s *Server) requestAid(c *fiber.Ctx) error {
	participantID := paramID(c, "id")
	amount := formCents(c, "montant_demande")
	if err := s.svc.SocialFund.Request(c.UserContext(), participantID, amount); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return back(c)
}

func (s *Server) decideAid(c *fiber.Ctx) error {
	requestID := paramID(c, "id")
	approve := c.FormValue("decision") == "valide"
	granted := formCents(c, "montant_accorde")
	decidedOn := formDate(c, "date_commission")
	err := s.svc.SocialFund.Decide(c.UserContext(), requestID, approve, granted, decidedOn)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return back(c)
}
