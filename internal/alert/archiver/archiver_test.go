package archiver

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/metrics"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

type resolvedRepo struct {
	alert.Repository
	candidates []model.LotAlert
	filters    *dto.ResolvedAlertFilters
}

func (r *resolvedRepo) ListResolvedBefore(_ context.Context, f *dto.ResolvedAlertFilters) ([]model.LotAlert, error) {
	r.filters = f
	return r.candidates, nil
}

type archivingUseCase struct {
	alert.UseCase
	errs     map[string]error
	archived []dto.ArchiveInput
}

func (u *archivingUseCase) Archive(_ context.Context, input *dto.ArchiveInput) (*model.LotAlert, error) {
	if err := u.errs[input.ID]; err != nil {
		return nil, err
	}
	u.archived = append(u.archived, *input)
	return &model.LotAlert{ID: input.ID, Status: model.AlertStatusArchived}, nil
}

type stubLocker struct {
	held     bool
	released bool
}

func (l *stubLocker) AcquireLock(context.Context, string, string, time.Duration) (bool, error) {
	return !l.held, nil
}

func (l *stubLocker) ReleaseLock(context.Context, string, string) error {
	l.released = true
	return nil
}

var sweepNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func newTestArchiver(repo *resolvedRepo, uc *archivingUseCase, locker Locker) *Archiver {
	a := New(repo, uc, locker, Config{Interval: time.Hour, Retention: 24 * time.Hour, BatchSize: 10},
		metrics.New(prometheus.NewRegistry()), logger.NewNop())
	a.nowFn = func() time.Time { return sweepNow }
	return a
}

func TestSweepArchivesResolvedAlerts(t *testing.T) {
	repo := &resolvedRepo{candidates: []model.LotAlert{
		{ID: "a1", BreweryID: "brew-1", Version: 3},
		{ID: "a2", BreweryID: "brew-1", Version: 4},
		{ID: "a3", BreweryID: "brew-2", Version: 2},
	}}
	uc := &archivingUseCase{errs: map[string]error{
		"a2": apperr.Conflict("changed"),
	}}
	locker := &stubLocker{}

	n, err := newTestArchiver(repo, uc, locker).Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 archived, got %d", n)
	}
	if !repo.filters.ResolvedBefore.Equal(sweepNow.Add(-24*time.Hour)) || repo.filters.Limit != 10 {
		t.Fatalf("unexpected filters: %+v", repo.filters)
	}
	if *uc.archived[0].ExpectedVersion != 3 || uc.archived[1].BreweryID != "brew-2" {
		t.Fatalf("archive must carry the observed version and brewery: %+v", uc.archived)
	}
	if !locker.released {
		t.Fatalf("lock was not released")
	}
}

func TestSweepSkipsWhenLockHeld(t *testing.T) {
	repo := &resolvedRepo{candidates: []model.LotAlert{{ID: "a1", Version: 3}}}
	uc := &archivingUseCase{}

	n, err := newTestArchiver(repo, uc, &stubLocker{held: true}).Sweep(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected a no-op sweep, got %d %v", n, err)
	}
	if repo.filters != nil {
		t.Fatalf("repository must not be queried without the lock")
	}
}

func TestSweepStopsOnUnexpectedError(t *testing.T) {
	repo := &resolvedRepo{candidates: []model.LotAlert{{ID: "a1", Version: 1}, {ID: "a2", Version: 1}}}
	uc := &archivingUseCase{errs: map[string]error{"a1": apperr.DataIntegrity(context.DeadlineExceeded)}}

	n, err := newTestArchiver(repo, uc, nil).Sweep(context.Background())
	if err == nil || n != 0 {
		t.Fatalf("expected failure before any archive, got %d %v", n, err)
	}
}
