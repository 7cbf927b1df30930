package web

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) resetDatabase(c *fiber.Ctx) error {
	if err := s.svc.Admin.Reset(c.UserContext()); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (s *Server) seedDemo(c *fiber.Ctx) error {
	if err := s.svc.Admin.SeedDemo(c.UserContext()); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (s *Server) seedRefundCase(c *fiber.Ctx) error {
	tripID, err := s.svc.Admin.SeedRefundCase(c.UserContext())
	if err != nil {
		return err
	}
	return c.Redirect(tripURL(tripID))
}
