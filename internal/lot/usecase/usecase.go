package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/lot"
	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Invalidator drops cached availability for an ingredient after its lots change.
type Invalidator interface {
	Invalidate(ctx context.Context, breweryID, ingredientID string, category model.Category) error
}

type lotUseCase struct {
	repo        lot.Repository
	invalidator Invalidator
	logger      logger.ZapLogger
	nowFn       func() time.Time
}

func NewLotUseCase(repo lot.Repository, invalidator Invalidator, log logger.ZapLogger) lot.UseCase {
	return &lotUseCase{
		repo:        repo,
		invalidator: invalidator,
		logger:      log,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

func (uc *lotUseCase) ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.StockLot, error) {
	if filters.IngredientID == "" {
		return nil, apperr.InvalidArgument("ingredient id is required")
	}
	if _, err := model.ParseCategory(string(filters.Category)); err != nil {
		return nil, apperr.InvalidArgument("%v", err)
	}
	return uc.repo.ListLots(ctx, filters)
}

func (uc *lotUseCase) ReceiveLot(ctx context.Context, input *dto.ReceiveLotInput) (*model.StockLot, error) {
	if strings.TrimSpace(input.BreweryID) == "" {
		return nil, apperr.InvalidArgument("brewery id is required")
	}
	category, err := model.ParseCategory(input.Category)
	if err != nil {
		return nil, apperr.InvalidArgument("%v", err)
	}
	if strings.TrimSpace(input.LotNumber) == "" || input.IngredientID == "" {
		return nil, apperr.InvalidArgument("lot number and ingredient id are required")
	}
	if input.QuantityReceived.IsNegative() {
		return nil, apperr.InvalidArgument("quantity received must not be negative")
	}

	key := dto.LotKey{
		BreweryID:    input.BreweryID,
		IngredientID: input.IngredientID,
		Category:     category,
		LotNumber:    input.LotNumber,
	}
	existing, err := uc.repo.GetLot(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.InvalidArgument("lot %s already received", input.LotNumber)
	}

	now := uc.nowFn()
	receivedDate := input.ReceivedDate
	if receivedDate.IsZero() {
		receivedDate = now
	}

	var supplier *string
	if input.SupplierName != "" {
		supplier = &input.SupplierName
	}

	l := &model.StockLot{
		BreweryID:         input.BreweryID,
		LotNumber:         input.LotNumber,
		IngredientID:      input.IngredientID,
		Category:          category,
		Unit:              input.Unit,
		QuantityReceived:  input.QuantityReceived,
		QuantityReserved:  decimal.Zero,
		QuantityAvailable: input.QuantityReceived,
		ReceivedDate:      receivedDate.UTC(),
		ExpirationDate:    input.ExpirationDate,
		UnitCost:          input.UnitCost,
		SupplierName:      supplier,
		UpdatedAt:         now,
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, key)

	uc.logger.Info("Lot received",
		zap.String("lot_number", l.LotNumber),
		zap.String("ingredient_id", l.IngredientID),
		zap.String("quantity_received", l.QuantityReceived.String()),
	)
	return l, nil
}

func (uc *lotUseCase) UpdateReserved(ctx context.Context, input *dto.UpdateReservedInput) (*model.StockLot, error) {
	if input.QuantityReserved.IsNegative() {
		return nil, apperr.InvalidArgument("quantity reserved must not be negative")
	}

	current, err := uc.repo.GetLot(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperr.NotFound("lot", input.Key.LotNumber)
	}
	if input.QuantityReserved.GreaterThan(current.QuantityReceived) {
		return nil, apperr.InvalidArgument("cannot reserve %s of lot %s: only %s received",
			input.QuantityReserved, current.LotNumber, current.QuantityReceived)
	}

	if err := uc.repo.UpdateReserved(ctx, input.Key, input.QuantityReserved); err != nil {
		if errors.Is(err, lot.ErrNotUpdated) {
			return nil, apperr.Conflict("lot %s changed while updating reservation", input.Key.LotNumber)
		}
		return nil, err
	}
	uc.invalidate(ctx, input.Key)

	return uc.repo.GetLot(ctx, input.Key)
}

func (uc *lotUseCase) invalidate(ctx context.Context, key dto.LotKey) {
	if uc.invalidator == nil {
		return
	}
	if err := uc.invalidator.Invalidate(ctx, key.BreweryID, key.IngredientID, key.Category); err != nil {
		// Stale entries expire on their own TTL.
		uc.logger.Warn("failed to invalidate availability cache",
			zap.String("ingredient_id", key.IngredientID),
			zap.Error(err),
		)
	}
}
