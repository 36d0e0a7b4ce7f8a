package http

import (
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/auth"
	availDto "github.com/fekuna/brewops-lot-service/internal/availability/dto"
	"github.com/fekuna/brewops-lot-service/internal/document"
	lotHandler "github.com/fekuna/brewops-lot-service/internal/lot/handler"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type acknowledgeRequest struct {
	Notes           string `json:"notes"`
	ExpectedVersion *int64 `json:"expected_version"`
}

type resolveRequest struct {
	ResolutionNotes string `json:"resolution_notes"`
	ExpectedVersion *int64 `json:"expected_version"`
}

type alertResponse struct {
	*model.LotAlert
	DocumentLinks []document.SignedDocument `json:"document_links"`
}

// GET /api/v1/lots?ingredient=&category=&amount=&unit=
func (s *Server) resolveAvailability(c *fiber.Ctx) error {
	amount, err := lotHandler.ParseAmount(c.Query("amount"))
	if err != nil {
		return err
	}

	res, err := s.deps.Availability.Resolve(c.UserContext(), &availDto.ResolveInput{
		BreweryID:      auth.GetBreweryID(c.UserContext()),
		IngredientID:   c.Query("ingredient"),
		Category:       c.Query("category"),
		RequiredAmount: amount,
		Unit:           c.Query("unit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (s *Server) listLotAlerts(c *fiber.Ctx) error {
	alerts, err := s.deps.Alerts.ListByLot(c.UserContext(), auth.GetBreweryID(c.UserContext()), c.Params("lotNumber"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"alerts": alerts})
}

func (s *Server) lotRisk(c *fiber.Ctx) error {
	risk, err := s.deps.Severity.HighestActiveSeverity(c.UserContext(), auth.GetBreweryID(c.UserContext()), c.Params("lotNumber"))
	if err != nil {
		return err
	}
	return c.JSON(risk)
}

func (s *Server) getAlert(c *fiber.Ctx) error {
	a, err := s.deps.Alerts.GetAlert(c.UserContext(), auth.GetBreweryID(c.UserContext()), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(s.withLinks(c, a))
}

func (s *Server) acknowledgeAlert(c *fiber.Ctx) error {
	var req acknowledgeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperr.InvalidArgument("malformed request body: %v", err)
		}
	}

	a, err := s.deps.Alerts.Acknowledge(c.UserContext(), &dto.AcknowledgeInput{
		BreweryID:       auth.GetBreweryID(c.UserContext()),
		ID:              c.Params("id"),
		Notes:           req.Notes,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return err
	}
	return c.JSON(s.withLinks(c, a))
}

func (s *Server) resolveAlert(c *fiber.Ctx) error {
	var req resolveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperr.InvalidArgument("malformed request body: %v", err)
		}
	}

	a, err := s.deps.Alerts.Resolve(c.UserContext(), &dto.ResolveInput{
		BreweryID:       auth.GetBreweryID(c.UserContext()),
		ID:              c.Params("id"),
		ResolutionNotes: req.ResolutionNotes,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return err
	}
	return c.JSON(s.withLinks(c, a))
}

func (s *Server) withLinks(c *fiber.Ctx, a *model.LotAlert) alertResponse {
	links, err := s.deps.Signer.Sign(c.UserContext(), a.Documents)
	if err != nil {
		s.logger.Warn("failed to sign alert documents", zap.String("lot_alert_id", a.ID), zap.Error(err))
		links = []document.SignedDocument{}
	}
	return alertResponse{LotAlert: a, DocumentLinks: links}
}
