package usecase

import (
	"context"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"go.uber.org/zap"
)

type severityAggregator struct {
	repo   alert.Repository
	logger logger.ZapLogger
	nowFn  func() time.Time
}

func NewSeverityAggregator(repo alert.Repository, log logger.ZapLogger) alert.SeverityAggregator {
	return &severityAggregator{
		repo:   repo,
		logger: log,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *severityAggregator) HighestActiveSeverity(ctx context.Context, breweryID, lotNumber string) (model.LotRisk, error) {
	alerts, err := s.repo.ListByLot(ctx, breweryID, lotNumber)
	if err != nil {
		return model.LotRisk{}, err
	}
	return Summarize(lotNumber, alerts, s.nowFn()), nil
}

func (s *severityAggregator) SummarizeLots(ctx context.Context, breweryID string, lotNumbers []string) (map[string]model.LotRisk, error) {
	alerts, err := s.repo.ListByLots(ctx, breweryID, lotNumbers)
	if err != nil {
		return nil, err
	}

	byLot := make(map[string][]model.LotAlert, len(lotNumbers))
	for _, a := range alerts {
		byLot[a.LotNumber] = append(byLot[a.LotNumber], a)
	}

	now := s.nowFn()
	out := make(map[string]model.LotRisk, len(lotNumbers))
	for _, lotNumber := range lotNumbers {
		out[lotNumber] = Summarize(lotNumber, byLot[lotNumber], now)
	}

	s.logger.Debug("summarized lot alerts",
		zap.Int("lots", len(lotNumbers)),
		zap.Int("alerts", len(alerts)),
	)
	return out, nil
}

// Summarize reduces alerts to the highest severity among those still Active
// and unexpired at now. Acknowledged alerts only raise HasAcknowledgedAlerts.
func Summarize(lotNumber string, alerts []model.LotAlert, now time.Time) model.LotRisk {
	risk := model.LotRisk{LotNumber: lotNumber}
	for i := range alerts {
		a := &alerts[i]
		if a.IsExpired(now) {
			continue
		}
		switch a.Status {
		case model.AlertStatusActive:
			sev := a.Severity
			risk.HighestActiveSeverity = model.HighestOf(risk.HighestActiveSeverity, &sev)
			risk.HasActiveAlerts = true
			risk.ActiveAlertCount++
		case model.AlertStatusAcknowledged:
			risk.HasAcknowledgedAlerts = true
		}
	}
	return risk
}
