package http

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/auth"
	"github.com/fekuna/brewops-lot-service/internal/availability"
	"github.com/fekuna/brewops-lot-service/internal/document"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const HeaderBreweryID = "X-Brewery-ID"

type Deps struct {
	Availability availability.UseCase
	Alerts       alert.UseCase
	Severity     alert.SeverityAggregator
	Signer       *document.Signer
	// Gatherer backs /metrics; nil leaves the route out.
	Gatherer prometheus.Gatherer
	// Health backs /health; nil always reports ok.
	Health func(ctx context.Context) error
}

type Server struct {
	app    *fiber.App
	deps   Deps
	logger logger.ZapLogger
}

func NewServer(deps Deps, log logger.ZapLogger) *Server {
	s := &Server{deps: deps, logger: log}
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(s.requestLogger)

	s.app.Get("/health", s.health)
	if deps.Gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := s.app.Group("/api/v1", breweryContext)
	api.Get("/lots", s.resolveAvailability)
	api.Get("/lots/:lotNumber/alerts", s.listLotAlerts)
	api.Get("/lots/:lotNumber/risk", s.lotRisk)
	api.Get("/alerts/:id", s.getAlert)
	api.Post("/alerts/:id/acknowledge", s.acknowledgeAlert)
	api.Post("/alerts/:id/resolve", s.resolveAlert)

	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func breweryContext(c *fiber.Ctx) error {
	breweryID := c.Get(HeaderBreweryID)
	if breweryID == "" {
		return apperr.InvalidArgument("%s header is required", HeaderBreweryID)
	}
	c.SetUserContext(auth.WithBreweryID(c.UserContext(), breweryID))
	return c.Next()
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Debug("HTTP request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": apperr.Body{Kind: apperr.KindInvalidArgument, Message: fe.Message}})
	}

	code := apperr.HTTPStatus(err)
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("HTTP request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(code).JSON(fiber.Map{"error": apperr.ToBody(err)})
}

func (s *Server) health(c *fiber.Ctx) error {
	if s.deps.Health != nil {
		if err := s.deps.Health(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
