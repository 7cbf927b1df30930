package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"

	"github.com/collet-david-pro/Voyages/internal/config"
	"github.com/collet-david-pro/Voyages/internal/service"
	"github.com/collet-david-pro/Voyages/internal/storage/sqlite"
	"github.com/collet-david-pro/Voyages/internal/uploads"
	"github.com/collet-david-pro/Voyages/internal/web"
	"github.com/collet-david-pro/Voyages/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		slog.Error("Failed to create data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	files, err := uploads.New(cfg.UploadsDir)
	if err != nil {
		slog.Error("Failed to prepare uploads directory", "dir", cfg.UploadsDir, "error", err)
		os.Exit(1)
	}

	server, err := web.New(cfg, web.Services{
		Trips:        service.NewTripService(store, files),
		Participants: service.NewParticipantService(store),
		Payments:     service.NewPaymentService(store),
		SocialFund:   service.NewSocialFundService(store),
		Budget:       service.NewBudgetService(store),
		Documents:    service.NewDocumentService(store, files),
		Settings:     service.NewSettingsService(store, files),
		Admin:        service.NewAdminService(store),
		Exports:      service.NewExportService(store, files),
	})
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	if cfg.OpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := browser.OpenURL(cfg.BaseURL()); err != nil {
				slog.Warn("Could not open browser", "url", cfg.BaseURL(), "error", err)
			}
		}()
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		slog.Info("Shutting down")
		if err := server.Shutdown(); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	if err := server.Listen(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
