package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/service"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

func tripURL(id int64) string {
	return fmt.Sprintf("/voyages/%d", id)
}

func (s *Server) addParticipant(c *fiber.Ctx) error {
	tripID := paramID(c, "id")
	kind := models.ParticipantKind(c.FormValue("type", string(models.KindStudent)))
	classOrRole := c.FormValue("classe")
	if kind == models.KindAdult {
		classOrRole = c.FormValue("fonction")
	}
	_, err := s.svc.Participants.Add(c.UserContext(), tripID, kind,
		c.FormValue("nom"), c.FormValue("prenom"), classOrRole)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return c.Redirect(tripURL(tripID))
}

func (s *Server) changeStatus(c *fiber.Ctx) error {
	id := paramID(c, "id")
	requested := models.Status(c.FormValue("statut"))
	if err := s.svc.Participants.ChangeStatus(c.UserContext(), id, requested); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return back(c)
		}
		return err
	}
	return back(c)
}

// toggleFlag flips a cosmetic checkbox and answers JSON for the page script.
func (s *Server) toggleFlag(c *fiber.Ctx) error {
	id := paramID(c, "id")
	flag := models.ParticipantFlag(c.Params("flag"))
	value, err := s.svc.Participants.ToggleFlag(c.UserContext(), id, flag)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "participant inconnu"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"flag": string(flag), "value": value})
}

func (s *Server) validateRefund(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if err := s.svc.Participants.ValidateRefund(c.UserContext(), id); err != nil {
		return err
	}
	account, err := s.svc.Participants.Account(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Redirect(tripURL(account.TripID))
}
