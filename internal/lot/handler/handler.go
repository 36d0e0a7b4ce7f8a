package handler

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/auth"
	"github.com/fekuna/brewops-lot-service/internal/availability"
	availDto "github.com/fekuna/brewops-lot-service/internal/availability/dto"
	"github.com/fekuna/brewops-lot-service/internal/lot"
	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	lotv1 "github.com/fekuna/brewops-lot-service/pkg/api/lotv1"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type LotHandler struct {
	lotv1.UnimplementedLotServiceServer
	lotUC   lot.UseCase
	availUC availability.UseCase
	logger  logger.ZapLogger
}

func NewLotHandler(lotUC lot.UseCase, availUC availability.UseCase, log logger.ZapLogger) *LotHandler {
	return &LotHandler{
		lotUC:   lotUC,
		availUC: availUC,
		logger:  log,
	}
}

func (h *LotHandler) ResolveAvailability(ctx context.Context, req *lotv1.ResolveAvailabilityRequest) (*lotv1.ResolveAvailabilityResponse, error) {
	amount, err := ParseAmount(req.RequiredAmount)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	res, err := h.availUC.Resolve(ctx, &availDto.ResolveInput{
		BreweryID:      auth.GetBreweryID(ctx),
		IngredientID:   req.IngredientId,
		Category:       req.Category,
		RequiredAmount: amount,
		Unit:           req.Unit,
	})
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return mapAvailabilityToProto(res), nil
}

func (h *LotHandler) ListLots(ctx context.Context, req *lotv1.ListLotsRequest) (*lotv1.ListLotsResponse, error) {
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, apperr.GRPCStatus(apperr.InvalidArgument("%v", err))
	}

	lots, err := h.lotUC.ListLots(ctx, &dto.LotFilters{
		BreweryID:        auth.GetBreweryID(ctx),
		IngredientID:     req.IngredientId,
		Category:         category,
		IncludeExhausted: req.IncludeExhausted,
	})
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	out := make([]*lotv1.Lot, len(lots))
	for i := range lots {
		out[i] = mapLotToProto(&lots[i])
	}
	return &lotv1.ListLotsResponse{Lots: out}, nil
}

// ParseAmount reads a decimal amount; blank means zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.InvalidArgument("required amount %q is not a number", s)
	}
	return d, nil
}

func mapAvailabilityToProto(res *model.AvailabilityResult) *lotv1.ResolveAvailabilityResponse {
	lots := make([]*lotv1.LotAvailability, len(res.Lots))
	for i, l := range res.Lots {
		lots[i] = &lotv1.LotAvailability{
			LotNumber:             l.LotNumber,
			Unit:                  l.Unit,
			QuantityAvailable:     l.QuantityAvailable.String(),
			QuantityReceived:      l.QuantityReceived.String(),
			PercentageRemaining:   l.PercentageRemaining.String(),
			ReceivedDate:          timestamppb.New(l.ReceivedDate),
			ExpirationDate:        timestampOrNil(l.ExpirationDate),
			HighestActiveSeverity: severityString(l.HighestActiveSeverity),
			HasActiveAlerts:       l.HasActiveAlerts,
			HasAcknowledgedAlerts: l.HasAcknowledgedAlerts,
			UsedForFulfillment:    l.UsedForFulfillment,
		}
	}
	return &lotv1.ResolveAvailabilityResponse{
		IsAvailable:           res.IsAvailable,
		CanFulfillSingleLot:   res.CanFulfillSingleLot,
		TotalAvailable:        res.TotalAvailable.String(),
		LotsRequired:          int32(res.LotsRequired),
		HighestActiveSeverity: severityString(res.HighestActiveSeverity),
		Lots:                  lots,
	}
}

func mapLotToProto(l *model.StockLot) *lotv1.Lot {
	out := &lotv1.Lot{
		LotNumber:         l.LotNumber,
		IngredientId:      l.IngredientID,
		Category:          string(l.Category),
		Unit:              l.Unit,
		QuantityReceived:  l.QuantityReceived.String(),
		QuantityReserved:  l.QuantityReserved.String(),
		QuantityAvailable: l.QuantityAvailable.String(),
		ReceivedDate:      timestamppb.New(l.ReceivedDate),
		ExpirationDate:    timestampOrNil(l.ExpirationDate),
	}
	if l.UnitCost != nil {
		out.UnitCost = l.UnitCost.String()
	}
	if l.SupplierName != nil {
		out.SupplierName = *l.SupplierName
	}
	return out
}

func severityString(s *model.Severity) string {
	if s == nil {
		return ""
	}
	return string(*s)
}

func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
