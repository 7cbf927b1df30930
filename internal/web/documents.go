package web

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) uploadDocument(c *fiber.Ctx) error {
	tripID := paramID(c, "id")
	header, err := c.FormFile("document")
	if err != nil {
		return back(c)
	}
	f, err := header.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := s.svc.Documents.Upload(c.UserContext(), tripID, header.Filename, f); err != nil {
		return err
	}
	return c.Redirect(tripURL(tripID))
}

func (s *Server) downloadDocument(c *fiber.Ctx) error {
	doc, path, err := s.svc.Documents.Resolve(c.UserContext(), paramID(c, "id"))
	if err != nil {
		return err
	}
	if c.Query("apercu") == "1" {
		return c.SendFile(path)
	}
	return c.Download(path, doc.FileName)
}

func (s *Server) deleteDocument(c *fiber.Ctx) error {
	if err := s.svc.Documents.Delete(c.UserContext(), paramID(c, "id")); err != nil {
		return err
	}
	return back(c)
}
