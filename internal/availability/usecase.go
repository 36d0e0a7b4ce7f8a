package availability

import (
	"context"

	"github.com/fekuna/brewops-lot-service/internal/availability/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
)

type UseCase interface {
	Resolve(ctx context.Context, input *dto.ResolveInput) (*model.AvailabilityResult, error)
}

// Snapshot is the stock and alert state a verdict is computed from.
type Snapshot struct {
	Lots []model.StockLot         `json:"lots"`
	Risk map[string]model.LotRisk `json:"risk"`
}

// Cache holds snapshots for a few seconds. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, breweryID, ingredientID string, category model.Category) (*Snapshot, error)
	Set(ctx context.Context, breweryID, ingredientID string, category model.Category, snap *Snapshot) error
}
