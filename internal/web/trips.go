package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/service"
)

func (s *Server) index(c *fiber.Ctx) error {
	trips, err := s.svc.Trips.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{
		"Title": "Voyages scolaires",
		"Trips": trips,
	})
}

// tripFromForm reads the shared trip form fields.
func tripFromForm(c *fiber.Ctx) models.Trip {
	return models.Trip{
		Destination:      c.FormValue("destination"),
		DepartureDate:    formDate(c, "date_depart"),
		StudentPrice:     formCents(c, "prix_eleve"),
		ExpectedStudents: formInt(c, "nombre_eleves"),
		ChaperoneCount:   formInt(c, "nombre_accompagnateurs"),
		Nights:           formInt(c, "nuitees"),
	}
}

func (s *Server) createTrip(c *fiber.Ctx) error {
	trip := tripFromForm(c)
	if err := s.svc.Trips.Create(c.UserContext(), &trip); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return c.Redirect(tripURL(trip.ID))
}

func (s *Server) tripDetail(c *fiber.Ctx) error {
	detail, err := s.svc.Trips.Detail(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return c.Render("trip_detail", fiber.Map{
		"Title":  detail.Trip.Destination,
		"Detail": detail,
	})
}

func (s *Server) tripEditForm(c *fiber.Ctx) error {
	trip, err := s.svc.Trips.Get(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	return c.Render("trip_edit", fiber.Map{
		"Title": "Modifier le voyage",
		"Trip":  trip,
	})
}

func (s *Server) updateTrip(c *fiber.Ctx) error {
	trip := tripFromForm(c)
	trip.ID = paramID(c, "id")
	if err := s.svc.Trips.Update(c.UserContext(), &trip); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return c.Redirect(tripURL(trip.ID))
}

func (s *Server) deleteTrip(c *fiber.Ctx) error {
	if err := s.svc.Trips.Delete(c.UserContext(), paramID(c, "id")); err != nil {
		return err
	}
	return c.Redirect("/")
}
