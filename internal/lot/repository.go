package lot

import (
	"context"
	"errors"

	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/shopspring/decimal"
)

// ErrNotUpdated is returned when a guarded UPDATE matched no row.
var ErrNotUpdated = errors.New("lot not updated")

type Repository interface {
	// ListLots returns lots in FIFO order: received_date, then lot_number.
	ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.StockLot, error)
	GetLot(ctx context.Context, key dto.LotKey) (*model.StockLot, error)

	// Intake and reservation hooks driven by other subsystems
	Create(ctx context.Context, lot *model.StockLot) error
	UpdateReserved(ctx context.Context, key dto.LotKey, reserved decimal.Decimal) error
}
