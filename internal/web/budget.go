package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/service"
)

func budgetURL(tripID int64) string {
	return fmt.Sprintf("/voyages/%d/budget", tripID)
}

func (s *Server) budgetPage(c *fiber.Ctx) error {
	page, err := s.svc.Budget.Page(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return c.Render("budget", fiber.Map{
		"Title": fmt.Sprintf("Budget - %s", page.Trip.Destination),
		"Page":  page,
	})
}

func (s *Server) addBudgetItem(c *fiber.Ctx) error {
	tripID := paramID(c, "id")
	item := models.BudgetItem{
		TripID:      tripID,
		Kind:        models.BudgetKind(c.FormValue("type")),
		CategoryID:  int64(formInt(c, "categorie")),
		Description: c.FormValue("description"),
		Amount:      formCents(c, "montant"),
	}
	if err := s.svc.Budget.AddItem(c.UserContext(), &item); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return c.Redirect(budgetURL(tripID))
}

func (s *Server) deleteBudgetItem(c *fiber.Ctx) error {
	tripID, err := s.svc.Budget.DeleteItem(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return c.Redirect(budgetURL(tripID))
}

func (s *Server) addBudgetCategory(c *fiber.Ctx) error {
	if err := s.svc.Budget.AddCategory(c.UserContext(), c.FormValue("nom")); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return back(c)
}

func (s *Server) deleteBudgetCategory(c *fiber.Ctx) error {
	if err := s.svc.Budget.DeleteCategory(c.UserContext(), paramID(c, "id")); err != nil {
		return err
	}
	return back(c)
}
