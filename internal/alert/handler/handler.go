package handler

import (
	"context"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/auth"
	"github.com/fekuna/brewops-lot-service/internal/document"
	"github.com/fekuna/brewops-lot-service/internal/model"
	lotv1 "github.com/fekuna/brewops-lot-service/pkg/api/lotv1"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type AlertHandler struct {
	lotv1.UnimplementedAlertServiceServer
	uc       alert.UseCase
	severity alert.SeverityAggregator
	signer   *document.Signer
	logger   logger.ZapLogger
}

func NewAlertHandler(uc alert.UseCase, severity alert.SeverityAggregator, signer *document.Signer, log logger.ZapLogger) *AlertHandler {
	return &AlertHandler{
		uc:       uc,
		severity: severity,
		signer:   signer,
		logger:   log,
	}
}

func (h *AlertHandler) GetAlert(ctx context.Context, req *lotv1.GetAlertRequest) (*lotv1.LotAlert, error) {
	a, err := h.uc.GetAlert(ctx, auth.GetBreweryID(ctx), req.LotAlertId)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return h.mapAlertWithLinks(ctx, a), nil
}

func (h *AlertHandler) ListLotAlerts(ctx context.Context, req *lotv1.ListLotAlertsRequest) (*lotv1.ListLotAlertsResponse, error) {
	alerts, err := h.uc.ListByLot(ctx, auth.GetBreweryID(ctx), req.LotNumber)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	out := make([]*lotv1.LotAlert, len(alerts))
	for i := range alerts {
		out[i] = MapAlertToProto(&alerts[i])
	}
	return &lotv1.ListLotAlertsResponse{Alerts: out}, nil
}

func (h *AlertHandler) GetLotRisk(ctx context.Context, req *lotv1.GetLotRiskRequest) (*lotv1.LotRisk, error) {
	if req.LotNumber == "" {
		return nil, apperr.GRPCStatus(apperr.InvalidArgument("lot number is required"))
	}
	risk, err := h.severity.HighestActiveSeverity(ctx, auth.GetBreweryID(ctx), req.LotNumber)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	out := &lotv1.LotRisk{
		LotNumber:             risk.LotNumber,
		HasActiveAlerts:       risk.HasActiveAlerts,
		HasAcknowledgedAlerts: risk.HasAcknowledgedAlerts,
		ActiveAlertCount:      int32(risk.ActiveAlertCount),
	}
	if risk.HighestActiveSeverity != nil {
		out.HighestActiveSeverity = string(*risk.HighestActiveSeverity)
	}
	return out, nil
}

func (h *AlertHandler) AcknowledgeAlert(ctx context.Context, req *lotv1.AcknowledgeAlertRequest) (*lotv1.LotAlert, error) {
	a, err := h.uc.Acknowledge(ctx, &dto.AcknowledgeInput{
		BreweryID:       auth.GetBreweryID(ctx),
		ID:              req.LotAlertId,
		Notes:           req.Notes,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return h.mapAlertWithLinks(ctx, a), nil
}

func (h *AlertHandler) ResolveAlert(ctx context.Context, req *lotv1.ResolveAlertRequest) (*lotv1.LotAlert, error) {
	a, err := h.uc.Resolve(ctx, &dto.ResolveInput{
		BreweryID:       auth.GetBreweryID(ctx),
		ID:              req.LotAlertId,
		ResolutionNotes: req.ResolutionNotes,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return h.mapAlertWithLinks(ctx, a), nil
}

func (h *AlertHandler) CreateAlert(ctx context.Context, req *lotv1.CreateAlertRequest) (*lotv1.LotAlert, error) {
	input := &dto.CreateAlertInput{
		BreweryID:         auth.GetBreweryID(ctx),
		LotNumber:         req.LotNumber,
		Severity:          req.Severity,
		Title:             req.Title,
		Description:       req.Description,
		AlertType:         req.AlertType,
		SupplierName:      req.SupplierName,
		SupplierReference: req.SupplierReference,
		AffectedBatches:   req.AffectedBatches,
		RecommendedAction: req.RecommendedAction,
		SourceURL:         req.SourceUrl,
		EventID:           req.RequestId,
	}
	for _, d := range req.Documents {
		if d == nil {
			continue
		}
		input.Documents = append(input.Documents, dto.DocumentInput{
			Name:        d.Name,
			StorageKey:  d.StorageKey,
			ContentType: d.ContentType,
		})
	}
	if req.AlertDate != nil {
		if err := req.AlertDate.CheckValid(); err != nil {
			return nil, apperr.GRPCStatus(apperr.Validation("alert_date", "alert date is not a valid timestamp"))
		}
		t := req.AlertDate.AsTime()
		input.AlertDate = &t
	}
	if req.ExpirationDate != nil {
		if err := req.ExpirationDate.CheckValid(); err != nil {
			return nil, apperr.GRPCStatus(apperr.Validation("expiration_date", "expiration date is not a valid timestamp"))
		}
		t := req.ExpirationDate.AsTime()
		input.ExpirationDate = &t
	}

	a, err := h.uc.CreateAlert(ctx, input)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return h.mapAlertWithLinks(ctx, a), nil
}

// mapAlertWithLinks adds signed download links; signing failures only drop the links.
func (h *AlertHandler) mapAlertWithLinks(ctx context.Context, a *model.LotAlert) *lotv1.LotAlert {
	out := MapAlertToProto(a)
	signed, err := h.signer.Sign(ctx, a.Documents)
	if err != nil {
		h.logger.Warn("failed to sign alert documents", zap.String("lot_alert_id", a.ID), zap.Error(err))
		return out
	}
	for i := range signed {
		if i < len(out.Documents) {
			out.Documents[i].Url = signed[i].URL
		}
	}
	return out
}

func MapAlertToProto(a *model.LotAlert) *lotv1.LotAlert {
	docs := make([]*lotv1.Document, len(a.Documents))
	for i, d := range a.Documents {
		docs[i] = &lotv1.Document{Name: d.Name, StorageKey: d.StorageKey, ContentType: d.ContentType}
	}
	batches := append([]string{}, a.AffectedBatches...)

	return &lotv1.LotAlert{
		LotAlertId:        a.ID,
		LotNumber:         a.LotNumber,
		Severity:          string(a.Severity),
		Status:            string(a.Status),
		Title:             a.Title,
		Description:       a.Description,
		AlertType:         a.AlertType,
		SupplierName:      deref(a.SupplierName),
		SupplierReference: deref(a.SupplierReference),
		AffectedBatches:   batches,
		RecommendedAction: deref(a.RecommendedAction),
		SourceUrl:         deref(a.SourceURL),
		Documents:         docs,
		AlertDate:         timestamppb.New(a.AlertDate),
		AcknowledgedDate:  timestampOrNil(a.AcknowledgedDate),
		InternalNotes:     deref(a.InternalNotes),
		ResolvedDate:      timestampOrNil(a.ResolvedDate),
		ResolutionNotes:   deref(a.ResolutionNotes),
		ExpirationDate:    timestampOrNil(a.ExpirationDate),
		Version:           a.Version,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
