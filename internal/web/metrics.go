package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyages_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	}, []string{"method", "status"})

	pdfDocuments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyages_pdf_documents_total",
		Help: "PDF documents generated, by document kind.",
	}, []string{"kind"})
)

func countRequests(c *fiber.Ctx) error {
	err := c.Next()
	httpRequests.WithLabelValues(c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
	return err
}
