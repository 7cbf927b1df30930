package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/service"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

func (s *Server) settingsPage(c *fiber.Ctx) error {
	inst, err := s.svc.Settings.Institution(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("settings", fiber.Map{
		"Title":       "Paramètres de l'établissement",
		"Institution": inst,
	})
}

func (s *Server) saveSettings(c *fiber.Ctx) error {
	inst := models.Institution{
		Name:            c.FormValue("nom_etablissement"),
		Address:         c.FormValue("adresse"),
		AuthorizerName:  c.FormValue("ordonnateur_nom"),
		SecretaryName:   c.FormValue("secretaire_nom"),
		SignatureCity:   c.FormValue("ville_signature"),
		CertificateText: c.FormValue("texte_attestation"),
	}
	if err := s.svc.Settings.Save(c.UserContext(), &inst); err != nil {
		return err
	}
	return c.Redirect("/parametres")
}

// uploadInstitutionImage replaces the logo or one of the signature images.
func (s *Server) uploadInstitutionImage(c *fiber.Ctx) error {
	var img storage.InstitutionImage
	switch c.Params("kind") {
	case "logo":
		img = storage.ImageLogo
	case "ordonnateur":
		img = storage.ImageAuthorizer
	case "secretaire":
		img = storage.ImageSecretary
	default:
		return fiber.ErrNotFound
	}

	header, err := c.FormFile("image")
	if err != nil {
		return back(c)
	}
	f, err := header.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := s.svc.Settings.SetImage(c.UserContext(), img, header.Filename, f); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return back(c)
		}
		return err
	}
	return c.Redirect("/parametres")
}
