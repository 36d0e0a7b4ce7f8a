package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/metrics"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type alertUseCase struct {
	repo    alert.Repository
	metrics *metrics.Metrics
	logger  logger.ZapLogger
	nowFn   func() time.Time
}

func NewAlertUseCase(repo alert.Repository, m *metrics.Metrics, log logger.ZapLogger) alert.UseCase {
	return &alertUseCase{
		repo:    repo,
		metrics: m,
		logger:  log,
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

// intakeNamespace seeds the name-based ids of alerts that carry an event id.
var intakeNamespace = uuid.MustParse("6f1c2b7e-3d4a-5e8f-9a0b-1c2d3e4f5a6b")

func (uc *alertUseCase) CreateAlert(ctx context.Context, input *dto.CreateAlertInput) (*model.LotAlert, error) {
	if strings.TrimSpace(input.BreweryID) == "" {
		return nil, apperr.InvalidArgument("brewery id is required")
	}
	if strings.TrimSpace(input.LotNumber) == "" {
		return nil, apperr.InvalidArgument("lot number is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperr.Validation("title", "alert title is required")
	}
	severity, err := model.ParseSeverity(input.Severity)
	if err != nil {
		return nil, apperr.InvalidArgument("%v", err)
	}

	id := uuid.New().String()
	if input.EventID != "" {
		id = uuid.NewSHA1(intakeNamespace, []byte(input.BreweryID+"/"+input.EventID)).String()
		existing, err := uc.repo.GetByID(ctx, input.BreweryID, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			uc.logger.Info("Lot alert already ingested",
				zap.String("lot_alert_id", id),
				zap.String("event_id", input.EventID),
			)
			return existing, nil
		}
	}

	now := uc.nowFn()
	alertDate := now
	if input.AlertDate != nil && !input.AlertDate.IsZero() {
		alertDate = input.AlertDate.UTC()
	}

	a := &model.LotAlert{
		ID:                id,
		BreweryID:         input.BreweryID,
		LotNumber:         input.LotNumber,
		Severity:          severity,
		Status:            model.AlertStatusActive,
		Title:             input.Title,
		Description:       input.Description,
		AlertType:         input.AlertType,
		SupplierName:      optional(input.SupplierName),
		SupplierReference: optional(input.SupplierReference),
		AffectedBatches:   model.JSONList[string](append([]string{}, input.AffectedBatches...)),
		RecommendedAction: optional(input.RecommendedAction),
		SourceURL:         optional(input.SourceURL),
		Documents:         model.JSONList[model.AlertDocument]{},
		AlertDate:         alertDate,
		ExpirationDate:    input.ExpirationDate,
		Version:           1,
		UpdatedAt:         now,
	}
	for _, d := range input.Documents {
		if d.StorageKey == "" {
			return nil, apperr.Validation("documents", "document %q has no storage key", d.Name)
		}
		a.Documents = append(a.Documents, model.AlertDocument{
			Name:        d.Name,
			StorageKey:  d.StorageKey,
			ContentType: d.ContentType,
		})
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		if input.EventID != "" {
			// A concurrent delivery of the same event may have won the insert.
			if existing, getErr := uc.repo.GetByID(ctx, a.BreweryID, a.ID); getErr == nil && existing != nil {
				return existing, nil
			}
		}
		uc.logger.Error("failed to create lot alert", zap.String("lot_number", a.LotNumber), zap.Error(err))
		return nil, err
	}
	uc.metrics.AlertIngested(string(a.Severity))

	uc.logger.Info("Lot alert created",
		zap.String("lot_alert_id", a.ID),
		zap.String("lot_number", a.LotNumber),
		zap.String("severity", string(a.Severity)),
	)
	return a, nil
}

func (uc *alertUseCase) GetAlert(ctx context.Context, breweryID, id string) (*model.LotAlert, error) {
	a, err := uc.repo.GetByID(ctx, breweryID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("lot alert", id)
	}
	return a, nil
}

func (uc *alertUseCase) ListByLot(ctx context.Context, breweryID, lotNumber string) ([]model.LotAlert, error) {
	if strings.TrimSpace(lotNumber) == "" {
		return nil, apperr.InvalidArgument("lot number is required")
	}
	return uc.repo.ListByLot(ctx, breweryID, lotNumber)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
