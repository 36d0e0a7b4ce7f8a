package lot

import (
	"context"

	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
)

type UseCase interface {
	ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.StockLot, error)
	ReceiveLot(ctx context.Context, input *dto.ReceiveLotInput) (*model.StockLot, error)
	UpdateReserved(ctx context.Context, input *dto.UpdateReservedInput) (*model.StockLot, error)
}
