package alert

import (
	"context"

	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
)

type UseCase interface {
	CreateAlert(ctx context.Context, input *dto.CreateAlertInput) (*model.LotAlert, error)
	GetAlert(ctx context.Context, breweryID, id string) (*model.LotAlert, error)
	ListByLot(ctx context.Context, breweryID, lotNumber string) ([]model.LotAlert, error)

	// Lifecycle
	Acknowledge(ctx context.Context, input *dto.AcknowledgeInput) (*model.LotAlert, error)
	Resolve(ctx context.Context, input *dto.ResolveInput) (*model.LotAlert, error)
	Archive(ctx context.Context, input *dto.ArchiveInput) (*model.LotAlert, error)
}

// SeverityAggregator reduces a lot's alerts to the signal shown on badges.
type SeverityAggregator interface {
	HighestActiveSeverity(ctx context.Context, breweryID, lotNumber string) (model.LotRisk, error)
	SummarizeLots(ctx context.Context, breweryID string, lotNumbers []string) (map[string]model.LotRisk, error)
}
