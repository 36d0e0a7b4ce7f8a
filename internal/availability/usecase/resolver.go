package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/availability"
	"github.com/fekuna/brewops-lot-service/internal/availability/dto"
	"github.com/fekuna/brewops-lot-service/internal/lot"
	lotDto "github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/metrics"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type availabilityUseCase struct {
	lots     lot.Repository
	severity alert.SeverityAggregator
	cache    availability.Cache
	metrics  *metrics.Metrics
	logger   logger.ZapLogger
}

// NewAvailabilityUseCase builds the resolver. cache may be nil.
func NewAvailabilityUseCase(lots lot.Repository, severity alert.SeverityAggregator, cache availability.Cache, m *metrics.Metrics, log logger.ZapLogger) availability.UseCase {
	return &availabilityUseCase{
		lots:     lots,
		severity: severity,
		cache:    cache,
		metrics:  m,
		logger:   log,
	}
}

func (uc *availabilityUseCase) Resolve(ctx context.Context, input *dto.ResolveInput) (result *model.AvailabilityResult, err error) {
	start := time.Now()
	defer func() {
		uc.metrics.ObserveResolve(resolveOutcome(result, err), time.Since(start))
	}()

	if strings.TrimSpace(input.IngredientID) == "" {
		return nil, apperr.InvalidArgument("ingredient id is required")
	}
	category, err := model.ParseCategory(input.Category)
	if err != nil {
		return nil, apperr.InvalidArgument("%v", err)
	}
	if input.RequiredAmount.IsNegative() {
		return nil, apperr.InvalidArgument("required amount must not be negative, got %s", input.RequiredAmount)
	}

	snap, err := uc.snapshot(ctx, input.BreweryID, input.IngredientID, category)
	if err != nil {
		return nil, err
	}

	for i := range snap.Lots {
		l := &snap.Lots[i]
		if err := l.Validate(); err != nil {
			uc.metrics.IntegrityError()
			uc.logger.Error("Lot quantity invariant violated",
				zap.String("lot_number", l.LotNumber),
				zap.String("ingredient_id", l.IngredientID),
				zap.String("quantity_received", l.QuantityReceived.String()),
				zap.String("quantity_reserved", l.QuantityReserved.String()),
				zap.String("quantity_available", l.QuantityAvailable.String()),
				zap.Error(err),
			)
			return nil, apperr.DataIntegrity(err)
		}
		if input.Unit != "" && l.Unit != "" && !strings.EqualFold(l.Unit, input.Unit) {
			return nil, apperr.InvalidArgument("lot %s is recorded in %q, requested %q; units are not converted",
				l.LotNumber, l.Unit, input.Unit)
		}
	}

	return Compute(input.IngredientID, category, input.RequiredAmount, input.Unit, snap), nil
}

// Compute derives the verdict from an already validated snapshot.
// Exhausted lots are skipped and not counted.
func Compute(ingredientID string, category model.Category, required decimal.Decimal, unit string, snap *availability.Snapshot) *model.AvailabilityResult {
	lots := make([]model.StockLot, len(snap.Lots))
	copy(lots, snap.Lots)
	model.SortLotsFIFO(lots)

	res := &model.AvailabilityResult{
		IngredientID:   ingredientID,
		Category:       category,
		RequiredAmount: required,
		Unit:           unit,
		TotalAvailable: decimal.Zero,
		Lots:           []model.LotAvailability{},
	}

	for i := range lots {
		l := &lots[i]
		if !l.QuantityAvailable.IsPositive() {
			continue
		}
		res.TotalAvailable = res.TotalAvailable.Add(l.QuantityAvailable)

		risk := snap.Risk[l.LotNumber]
		res.Lots = append(res.Lots, model.LotAvailability{
			LotNumber:             l.LotNumber,
			Unit:                  l.Unit,
			QuantityAvailable:     l.QuantityAvailable,
			QuantityReceived:      l.QuantityReceived,
			PercentageRemaining:   l.PercentageRemaining(),
			ReceivedDate:          l.ReceivedDate,
			ExpirationDate:        l.ExpirationDate,
			HighestActiveSeverity: risk.HighestActiveSeverity,
			HasActiveAlerts:       risk.HasActiveAlerts,
			HasAcknowledgedAlerts: risk.HasAcknowledgedAlerts,
		})
	}
	res.IsAvailable = res.TotalAvailable.IsPositive()

	if required.IsZero() {
		if res.IsAvailable {
			res.LotsRequired = 1
			res.CanFulfillSingleLot = true
			markUsed(res, 1)
		}
		return res
	}

	if res.TotalAvailable.LessThan(required) {
		return res
	}
	running := decimal.Zero
	for i := range res.Lots {
		running = running.Add(res.Lots[i].QuantityAvailable)
		if running.GreaterThanOrEqual(required) {
			res.LotsRequired = i + 1
			break
		}
	}
	res.CanFulfillSingleLot = res.LotsRequired == 1
	markUsed(res, res.LotsRequired)
	return res
}

func markUsed(res *model.AvailabilityResult, n int) {
	for i := 0; i < n && i < len(res.Lots); i++ {
		res.Lots[i].UsedForFulfillment = true
		res.HighestActiveSeverity = model.HighestOf(res.HighestActiveSeverity, res.Lots[i].HighestActiveSeverity)
	}
}

func (uc *availabilityUseCase) snapshot(ctx context.Context, breweryID, ingredientID string, category model.Category) (*availability.Snapshot, error) {
	if uc.cache != nil {
		snap, err := uc.cache.Get(ctx, breweryID, ingredientID, category)
		if err != nil {
			uc.logger.Warn("availability cache read failed", zap.String("ingredient_id", ingredientID), zap.Error(err))
		}
		uc.metrics.CacheLookup(snap != nil)
		if snap != nil {
			return snap, nil
		}
	}

	// Exhausted lots are fetched too so their quantities get validated.
	lots, err := uc.lots.ListLots(ctx, &lotDto.LotFilters{
		BreweryID:        breweryID,
		IngredientID:     ingredientID,
		Category:         category,
		IncludeExhausted: true,
	})
	if err != nil {
		return nil, err
	}

	lotNumbers := make([]string, 0, len(lots))
	for _, l := range lots {
		if l.QuantityAvailable.IsPositive() {
			lotNumbers = append(lotNumbers, l.LotNumber)
		}
	}
	risk, err := uc.severity.SummarizeLots(ctx, breweryID, lotNumbers)
	if err != nil {
		return nil, err
	}

	snap := &availability.Snapshot{Lots: lots, Risk: risk}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, breweryID, ingredientID, category, snap); err != nil {
			uc.logger.Warn("availability cache write failed", zap.String("ingredient_id", ingredientID), zap.Error(err))
		}
	}
	return snap, nil
}

func resolveOutcome(res *model.AvailabilityResult, err error) string {
	if err != nil {
		return string(apperr.KindOf(err))
	}
	if res.IsAvailable {
		return "available"
	}
	return "unavailable"
}
