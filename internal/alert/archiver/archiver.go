// Package archiver periodically moves alerts that have been resolved for
// longer than the retention period into the Archived state.
package archiver

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/metrics"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lockKey = "brewops:lots:archiver:lock"

// Locker is satisfied by *cache.RedisClient.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type Config struct {
	Interval  time.Duration
	Retention time.Duration
	BatchSize int
}

type Archiver struct {
	repo    alert.Repository
	uc      alert.UseCase
	locker  Locker
	cfg     Config
	metrics *metrics.Metrics
	logger  logger.ZapLogger
	nowFn   func() time.Time
}

func New(repo alert.Repository, uc alert.UseCase, locker Locker, cfg Config, m *metrics.Metrics, log logger.ZapLogger) *Archiver {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Archiver{
		repo:    repo,
		uc:      uc,
		locker:  locker,
		cfg:     cfg,
		metrics: m,
		logger:  log,
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

// Start sweeps every Interval until ctx is cancelled. A zero interval disables it.
func (a *Archiver) Start(ctx context.Context) {
	if a.cfg.Interval <= 0 {
		a.logger.Info("Alert archiver disabled")
		return
	}
	a.logger.Info("Starting alert archiver",
		zap.Duration("interval", a.cfg.Interval),
		zap.Duration("retention", a.cfg.Retention),
	)

	ticker := time.NewTicker(a.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Stopping alert archiver")
			return
		case <-ticker.C:
			if _, err := a.Sweep(ctx); err != nil && ctx.Err() == nil {
				a.logger.Error("Alert archive sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep archives one batch of expired resolutions and returns how many moved.
func (a *Archiver) Sweep(ctx context.Context) (int, error) {
	if a.locker != nil {
		token := uuid.New().String()
		ok, err := a.locker.AcquireLock(ctx, lockKey, token, a.lockTTL())
		if err != nil {
			return 0, err
		}
		if !ok {
			a.logger.Debug("Alert archive sweep already running elsewhere")
			return 0, nil
		}
		defer func() {
			if err := a.locker.ReleaseLock(context.WithoutCancel(ctx), lockKey, token); err != nil {
				a.logger.Warn("Failed to release archiver lock", zap.Error(err))
			}
		}()
	}

	candidates, err := a.repo.ListResolvedBefore(ctx, &dto.ResolvedAlertFilters{
		ResolvedBefore: a.nowFn().Add(-a.cfg.Retention),
		Limit:          a.cfg.BatchSize,
	})
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, c := range candidates {
		version := c.Version
		_, err := a.uc.Archive(ctx, &dto.ArchiveInput{
			BreweryID:       c.BreweryID,
			ID:              c.ID,
			ExpectedVersion: &version,
		})
		switch {
		case err == nil:
			archived++
			a.metrics.AlertArchived()
		case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrInvalidTransition):
			// Picked up by the next sweep if it is still eligible.
			a.logger.Debug("Skipping lot alert changed during sweep", zap.String("lot_alert_id", c.ID))
		default:
			return archived, err
		}
	}

	if archived > 0 {
		a.logger.Info("Archived resolved lot alerts", zap.Int("count", archived))
	}
	return archived, nil
}

func (a *Archiver) lockTTL() time.Duration {
	if a.cfg.Interval > 0 {
		return a.cfg.Interval
	}
	return time.Minute
}
