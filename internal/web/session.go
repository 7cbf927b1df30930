package web

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/auth"
)

// requireSession gates every page behind a login when an admin password is
// configured. With no password the application runs open, as expected from a
// single-user desktop tool.
func (s *Server) requireSession(c *fiber.Ctx) error {
	if s.gate == nil {
		return c.Next()
	}
	if token := c.Cookies(sessionCookie); token != "" {
		if _, err := s.sessions.Validate(token); err == nil {
			return c.Next()
		}
	}
	return c.Redirect("/login")
}

func (s *Server) loginPage(c *fiber.Ctx) error {
	if s.gate == nil {
		return c.Redirect("/")
	}
	return c.Render("login", fiber.Map{"Title": "Connexion"})
}

func (s *Server) login(c *fiber.Ctx) error {
	if s.gate == nil {
		return c.Redirect("/")
	}
	if err := s.gate.Check(c.FormValue("password")); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
				"Title": "Connexion",
				"Error": "Mot de passe incorrect.",
			})
		}
		return err
	}
	token, err := s.sessions.Generate()
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/")
}

func (s *Server) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login")
}
