package web

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/collet-david-pro/Voyages/internal/service"
)

// paramID parses a numeric path parameter; 0 means absent or malformed.
func paramID(c *fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// formCents parses a euro amount typed in a form ("620", "620.50", "620,50")
// into cents. Malformed input yields 0, the services reject it from there.
func formCents(c *fiber.Ctx, name string) int64 {
	return eurosToCents(c.FormValue(name))
}

func eurosToCents(v string) int64 {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}

func formInt(c *fiber.Ctx, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.FormValue(name)))
	if err != nil {
		return 0
	}
	return n
}

// formDate parses an ISO date input; zero time when empty or malformed.
func formDate(c *fiber.Ctx, name string) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(c.FormValue(name)))
	if err != nil {
		return time.Time{}
	}
	return t
}

// back redirects to the referring page, the index when there is none.
// Malformed form posts land here so the user just sees the page again.
func back(c *fiber.Ctx) error {
	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return c.Redirect(ref)
	}
	return c.Redirect("/")
}

// sendExport streams a rendered PDF as an attachment.
func sendExport(c *fiber.Ctx, exp *service.Export, kind string) error {
	pdfDocuments.WithLabelValues(kind).Inc()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exp.FileName))
	return c.Send(exp.Data)
}
