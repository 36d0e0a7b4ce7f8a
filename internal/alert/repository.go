package alert

import (
	"context"
	"errors"

	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
)

// ErrVersionMismatch is returned by ApplyTransition when another writer got there first.
var ErrVersionMismatch = errors.New("lot alert version mismatch")

type Repository interface {
	GetByID(ctx context.Context, breweryID, id string) (*model.LotAlert, error)
	// ListByLot returns every alert for the lot number, newest first.
	ListByLot(ctx context.Context, breweryID, lotNumber string) ([]model.LotAlert, error)
	ListByLots(ctx context.Context, breweryID string, lotNumbers []string) ([]model.LotAlert, error)
	Create(ctx context.Context, alert *model.LotAlert) error

	// ApplyTransition writes status, dates and notes in one statement guarded
	// by expectedVersion and bumps the version on success.
	ApplyTransition(ctx context.Context, alert *model.LotAlert, expectedVersion int64) error

	// Retention
	ListResolvedBefore(ctx context.Context, filters *dto.ResolvedAlertFilters) ([]model.LotAlert, error)
}
