package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
)

// memoryRepo mirrors the versioned UPDATE of the SQL repository.
type memoryRepo struct {
	mu     sync.Mutex
	alerts map[string]model.LotAlert
	writes int
}

func newMemoryRepo(alerts ...model.LotAlert) *memoryRepo {
	r := &memoryRepo{alerts: map[string]model.LotAlert{}}
	for _, a := range alerts {
		a.Normalize()
		r.alerts[a.ID] = a
	}
	return r
}

func (r *memoryRepo) GetByID(_ context.Context, breweryID, id string) (*model.LotAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alerts[id]
	if !ok || a.BreweryID != breweryID {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryRepo) ListByLot(_ context.Context, breweryID, lotNumber string) ([]model.LotAlert, error) {
	return r.ListByLots(context.Background(), breweryID, []string{lotNumber})
}

func (r *memoryRepo) ListByLots(_ context.Context, breweryID string, lotNumbers []string) ([]model.LotAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[string]bool{}
	for _, n := range lotNumbers {
		wanted[n] = true
	}
	out := []model.LotAlert{}
	for _, a := range r.alerts {
		if a.BreweryID == breweryID && wanted[a.LotNumber] {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AlertDate.After(out[j].AlertDate) })
	return out, nil
}

func (r *memoryRepo) Create(_ context.Context, a *model.LotAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[a.ID] = *a
	return nil
}

func (r *memoryRepo) ApplyTransition(_ context.Context, a *model.LotAlert, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.alerts[a.ID]
	if !ok || current.Version != expectedVersion {
		return alert.ErrVersionMismatch
	}
	a.Version = expectedVersion + 1
	r.alerts[a.ID] = *a
	r.writes++
	return nil
}

func (r *memoryRepo) ListResolvedBefore(_ context.Context, f *dto.ResolvedAlertFilters) ([]model.LotAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.LotAlert{}
	for _, a := range r.alerts {
		if a.Status == model.AlertStatusResolved && a.ResolvedDate != nil && a.ResolvedDate.Before(f.ResolvedBefore) {
			out = append(out, a)
		}
	}
	return out, nil
}
