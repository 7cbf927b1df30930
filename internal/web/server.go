// Package web is the HTTP surface: a server-rendered Fiber application with
// one route per user action, PDF export routes, an optional admin session and
// a Prometheus endpoint.
package web

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/collet-david-pro/Voyages/internal/accounting"
	"github.com/collet-david-pro/Voyages/internal/auth"
	"github.com/collet-david-pro/Voyages/internal/config"
	"github.com/collet-david-pro/Voyages/internal/service"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

const sessionCookie = "voyages_session"

// Services bundles the application services the handlers depend on.
type Services struct {
	Trips        *service.TripService
	Participants *service.ParticipantService
	Payments     *service.PaymentService
	SocialFund   *service.SocialFundService
	Budget       *service.BudgetService
	Documents    *service.DocumentService
	Settings     *service.SettingsService
	Admin        *service.AdminService
	Exports      *service.ExportService
}

// Server owns the Fiber app and its routes.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	svc      Services
	gate     *auth.PasswordGate
	sessions *auth.SessionManager
}

// New builds the application: template engine, middleware and every route.
func New(cfg *config.Config, svc Services) (*Server, error) {
	gate, err := auth.NewPasswordGate(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to set up admin password: %w", err)
	}

	s := &Server{cfg: cfg, svc: svc, gate: gate}
	if gate != nil {
		s.sessions = auth.NewSessionManager(12 * time.Hour)
	}

	engine := html.New(cfg.TemplatesDir, ".html")
	engine.AddFunc("euros", accounting.Euros)
	engine.AddFunc("date", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02/01/2006")
	})
	engine.AddFunc("isodate", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	})

	s.app = fiber.New(fiber.Config{
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
	})

	// A handler panic must surface as an error response, not kill the process.
	s.app.Use(recover.New())
	s.app.Use(countRequests)
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Static("/static", cfg.StaticDir)

	s.app.Get("/login", s.loginPage)
	s.app.Post("/login", s.login)
	s.app.Post("/logout", s.logout)
	s.app.Use(s.requireSession)

	s.app.Get("/", s.index)
	s.app.Post("/voyages", s.createTrip)
	s.app.Get("/voyages/:id", s.tripDetail)
	s.app.Get("/voyages/:id/modifier", s.tripEditForm)
	s.app.Post("/voyages/:id/modifier", s.updateTrip)
	s.app.Post("/voyages/:id/supprimer", s.deleteTrip)

	s.app.Post("/voyages/:id/participants", s.addParticipant)
	s.app.Post("/participants/:id/statut", s.changeStatus)
	s.app.Post("/participants/:id/indicateur/:flag", s.toggleFlag)
	s.app.Post("/participants/:id/rembourser", s.validateRefund)

	s.app.Get("/participants/:id/paiements", s.ledger)
	s.app.Post("/participants/:id/paiements", s.addPayment)
	s.app.Get("/paiements/:id/modifier", s.paymentEditForm)
	s.app.Post("/paiements/:id/modifier", s.updatePayment)
	s.app.Post("/paiements/:id/supprimer", s.deletePayment)
	s.app.Post("/modes-paiement", s.addPaymentMode)
	s.app.Post("/modes-paiement/:id/supprimer", s.deletePaymentMode)

	s.app.Get("/voyages/:id/fonds-social", s.socialFundPage)
	s.app.Post("/participants/:id/fonds-social", s.requestAid)
	s.app.Post("/fonds-social/:id/decision", s.decideAid)

	s.app.Get("/voyages/:id/budget", s.budgetPage)
	s.app.Post("/voyages/:id/budget", s.addBudgetItem)
	s.app.Post("/budget/:id/supprimer", s.deleteBudgetItem)
	s.app.Post("/categories-budget", s.addBudgetCategory)
	s.app.Post("/categories-budget/:id/supprimer", s.deleteBudgetCategory)

	s.app.Post("/voyages/:id/documents", s.uploadDocument)
	s.app.Get("/documents/:id/telecharger", s.downloadDocument)
	s.app.Post("/documents/:id/supprimer", s.deleteDocument)

	s.app.Get("/parametres", s.settingsPage)
	s.app.Post("/parametres", s.saveSettings)
	s.app.Post("/parametres/images/:kind", s.uploadInstitutionImage)

	s.app.Post("/admin/reinitialiser", s.resetDatabase)
	s.app.Post("/admin/demo", s.seedDemo)
	s.app.Post("/admin/cas-remboursement", s.seedRefundCase)

	s.app.Get("/voyages/:id/exports/liste-inscrits.pdf", s.exportEnrolledList)
	s.app.Post("/voyages/:id/exports/liste-editee.pdf", s.exportEditedList)
	s.app.Post("/voyages/:id/exports/participants.pdf", s.exportFilteredList)
	s.app.Get("/voyages/:id/exports/budget.pdf", s.exportBudget)
	s.app.Post("/voyages/:id/exports/echeancier.pdf", s.exportSchedule)
	s.app.Get("/participants/:id/exports/attestation.pdf", s.exportPaymentCertificate)
	s.app.Get("/participants/:id/exports/attestation-remboursement.pdf", s.exportRefundCertificate)
	s.app.Get("/fonds-social/:id/exports/notification.pdf", s.exportSocialFundNotice)

	return s, nil
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP until Shutdown is called.
func (s *Server) Listen() error {
	slog.Info("HTTP server listening", "addr", s.cfg.Addr())
	return s.app.Listen(s.cfg.Addr())
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}

// handleError maps errors to responses: 404 page for missing entities,
// plain-text errors on PDF routes, a generic error page otherwise.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if errors.Is(err, storage.ErrNotFound) {
		code = fiber.StatusNotFound
	}

	if code >= 500 {
		slog.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	// PDF generation failures come back as plain text, not a broken download.
	if strings.HasSuffix(c.Path(), ".pdf") {
		return c.Status(code).SendString(fmt.Sprintf("Erreur lors de la génération du PDF: %v", err))
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("404", fiber.Map{"Title": "Page introuvable"})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":   "Erreur",
		"Code":    code,
		"Message": err.Error(),
	})
}
