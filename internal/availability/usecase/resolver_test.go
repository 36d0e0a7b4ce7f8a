package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/availability"
	"github.com/fekuna/brewops-lot-service/internal/availability/dto"
	lotDto "github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/metrics"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type stubLots struct {
	lots  []model.StockLot
	calls int
}

func (s *stubLots) ListLots(_ context.Context, f *lotDto.LotFilters) ([]model.StockLot, error) {
	s.calls++
	out := []model.StockLot{}
	for _, l := range s.lots {
		if l.IngredientID == f.IngredientID && l.Category == f.Category {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLots) GetLot(context.Context, lotDto.LotKey) (*model.StockLot, error) {
	return nil, nil
}

func (s *stubLots) Create(context.Context, *model.StockLot) error {
	return nil
}

func (s *stubLots) UpdateReserved(context.Context, lotDto.LotKey, decimal.Decimal) error {
	return nil
}

type stubSeverity struct {
	risk      map[string]model.LotRisk
	requested []string
}

func (s *stubSeverity) HighestActiveSeverity(_ context.Context, _, lotNumber string) (model.LotRisk, error) {
	return s.risk[lotNumber], nil
}

func (s *stubSeverity) SummarizeLots(_ context.Context, _ string, lotNumbers []string) (map[string]model.LotRisk, error) {
	s.requested = append(s.requested, lotNumbers...)
	out := map[string]model.LotRisk{}
	for _, n := range lotNumbers {
		r := s.risk[n]
		r.LotNumber = n
		out[n] = r
	}
	return out, nil
}

type mapCache struct {
	snaps map[string]*availability.Snapshot
	sets  int
}

func (c *mapCache) Get(_ context.Context, breweryID, ingredientID string, category model.Category) (*availability.Snapshot, error) {
	return c.snaps[breweryID+ingredientID+string(category)], nil
}

func (c *mapCache) Set(_ context.Context, breweryID, ingredientID string, category model.Category, snap *availability.Snapshot) error {
	c.snaps[breweryID+ingredientID+string(category)] = snap
	c.sets++
	return nil
}

func day(d int) time.Time { return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC) }

func stockLot(number string, received, reserved int64, receivedOn time.Time) model.StockLot {
	rec := decimal.NewFromInt(received)
	res := decimal.NewFromInt(reserved)
	return model.StockLot{
		BreweryID:         "brew-1",
		LotNumber:         number,
		IngredientID:      "pilsner-malt",
		Category:          model.CategoryGrain,
		Unit:              "kg",
		QuantityReceived:  rec,
		QuantityReserved:  res,
		QuantityAvailable: rec.Sub(res),
		ReceivedDate:      receivedOn,
	}
}

func severity(s model.Severity) *model.Severity { return &s }

func newResolver(lots *stubLots, sev *stubSeverity, cache availability.Cache) availability.UseCase {
	if sev == nil {
		sev = &stubSeverity{}
	}
	return NewAvailabilityUseCase(lots, sev, cache, metrics.New(prometheus.NewRegistry()), logger.NewNop())
}

func resolve(t *testing.T, uc availability.UseCase, amount string) *model.AvailabilityResult {
	t.Helper()
	res, err := uc.Resolve(context.Background(), &dto.ResolveInput{
		BreweryID:      "brew-1",
		IngredientID:   "pilsner-malt",
		Category:       "Grain",
		RequiredAmount: decimal.RequireFromString(amount),
		Unit:           "kg",
	})
	if err != nil {
		t.Fatalf("resolve %s: %v", amount, err)
	}
	return res
}

func threeLots() *stubLots {
	return &stubLots{lots: []model.StockLot{
		stockLot("L3", 2, 0, day(3)),
		stockLot("L1", 5, 0, day(1)),
		stockLot("L2", 3, 0, day(2)),
	}}
}

func TestResolveLotsRequired(t *testing.T) {
	uc := newResolver(threeLots(), nil, nil)

	tests := []struct {
		amount       string
		available    bool
		lotsRequired int
		single       bool
	}{
		{"7", true, 2, false},
		{"4", true, 1, true},
		{"5", true, 1, true},
		{"10", true, 3, false},
		{"11", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			res := resolve(t, uc, tt.amount)
			if res.IsAvailable != tt.available || res.LotsRequired != tt.lotsRequired || res.CanFulfillSingleLot != tt.single {
				t.Fatalf("got available=%v lots=%d single=%v", res.IsAvailable, res.LotsRequired, res.CanFulfillSingleLot)
			}
			if !res.TotalAvailable.Equal(decimal.NewFromInt(10)) {
				t.Fatalf("expected total 10, got %s", res.TotalAvailable)
			}
			used := 0
			for _, l := range res.Lots {
				if l.UsedForFulfillment {
					used++
				}
			}
			if used != tt.lotsRequired {
				t.Fatalf("expected %d lots marked used, got %d", tt.lotsRequired, used)
			}
		})
	}
}

func TestResolveOrdersLotsFIFO(t *testing.T) {
	res := resolve(t, newResolver(threeLots(), nil, nil), "1")

	want := []string{"L1", "L2", "L3"}
	for i, l := range res.Lots {
		if l.LotNumber != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], l.LotNumber)
		}
	}
	if res.Category != model.CategoryGrain {
		t.Fatalf("expected normalized category, got %s", res.Category)
	}
}

func TestResolvePartiallyReservedLots(t *testing.T) {
	lots := &stubLots{lots: []model.StockLot{
		stockLot("L1", 10, 2, day(1)),
		stockLot("L2", 5, 0, day(5)),
	}}
	res := resolve(t, newResolver(lots, nil, nil), "9")

	if !res.TotalAvailable.Equal(decimal.NewFromInt(13)) {
		t.Fatalf("expected total 13, got %s", res.TotalAvailable)
	}
	if res.LotsRequired != 2 || res.CanFulfillSingleLot {
		t.Fatalf("expected two lots, got %d single=%v", res.LotsRequired, res.CanFulfillSingleLot)
	}
	if !res.Lots[0].PercentageRemaining.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected 80%% remaining, got %s", res.Lots[0].PercentageRemaining)
	}
}

func TestResolveZeroAmount(t *testing.T) {
	res := resolve(t, newResolver(threeLots(), nil, nil), "0")
	if !res.IsAvailable || res.LotsRequired != 1 || !res.CanFulfillSingleLot {
		t.Fatalf("unexpected zero-amount verdict: %+v", res)
	}
	if !res.Lots[0].UsedForFulfillment || res.Lots[1].UsedForFulfillment {
		t.Fatalf("only the oldest lot should be marked used")
	}

	empty := resolve(t, newResolver(&stubLots{}, nil, nil), "0")
	if empty.IsAvailable || empty.LotsRequired != 0 || len(empty.Lots) != 0 {
		t.Fatalf("unexpected verdict without stock: %+v", empty)
	}
}

func TestResolveSkipsExhaustedLots(t *testing.T) {
	lots := &stubLots{lots: []model.StockLot{
		stockLot("L1", 4, 4, day(1)),
		stockLot("L2", 6, 1, day(2)),
	}}
	sev := &stubSeverity{}
	res := resolve(t, newResolver(lots, sev, nil), "5")

	if len(res.Lots) != 1 || res.Lots[0].LotNumber != "L2" {
		t.Fatalf("exhausted lot must be skipped: %+v", res.Lots)
	}
	if res.LotsRequired != 1 {
		t.Fatalf("expected one lot, got %d", res.LotsRequired)
	}
	if len(sev.requested) != 1 || sev.requested[0] != "L2" {
		t.Fatalf("alerts should only be read for lots with stock, got %v", sev.requested)
	}
}

func TestResolveSeverityCoversUsedLots(t *testing.T) {
	sev := &stubSeverity{risk: map[string]model.LotRisk{
		"L1": {HighestActiveSeverity: severity(model.SeverityWarning), HasActiveAlerts: true},
		"L3": {HighestActiveSeverity: severity(model.SeverityRecall), HasActiveAlerts: true},
	}}
	uc := newResolver(threeLots(), sev, nil)

	res := resolve(t, uc, "7")
	if res.HighestActiveSeverity == nil || *res.HighestActiveSeverity != model.SeverityWarning {
		t.Fatalf("expected warning from used lots, got %v", res.HighestActiveSeverity)
	}
	if res.Lots[2].HighestActiveSeverity == nil || *res.Lots[2].HighestActiveSeverity != model.SeverityRecall {
		t.Fatalf("unused lot should still carry its badge")
	}

	res = resolve(t, uc, "10")
	if *res.HighestActiveSeverity != model.SeverityRecall {
		t.Fatalf("expected recall once L3 is used, got %v", *res.HighestActiveSeverity)
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	uc := newResolver(threeLots(), nil, nil)

	tests := []struct {
		name  string
		input dto.ResolveInput
	}{
		{"negative amount", dto.ResolveInput{IngredientID: "pilsner-malt", Category: "grain", RequiredAmount: decimal.NewFromInt(-1)}},
		{"missing ingredient", dto.ResolveInput{Category: "grain"}},
		{"unknown category", dto.ResolveInput{IngredientID: "pilsner-malt", Category: "fruit"}},
		{"unit mismatch", dto.ResolveInput{IngredientID: "pilsner-malt", Category: "grain", RequiredAmount: decimal.NewFromInt(1), Unit: "lb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			input.BreweryID = "brew-1"
			if _, err := uc.Resolve(context.Background(), &input); !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestResolveUnitIsCaseInsensitive(t *testing.T) {
	uc := newResolver(threeLots(), nil, nil)
	_, err := uc.Resolve(context.Background(), &dto.ResolveInput{
		BreweryID:      "brew-1",
		IngredientID:   "pilsner-malt",
		Category:       "grain",
		RequiredAmount: decimal.NewFromInt(1),
		Unit:           "KG",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestResolveIntegrityViolation(t *testing.T) {
	corrupt := stockLot("L1", 5, 7, day(1))
	lots := &stubLots{lots: []model.StockLot{corrupt, stockLot("L2", 5, 0, day(2))}}

	_, err := newResolver(lots, nil, nil).Resolve(context.Background(), &dto.ResolveInput{
		BreweryID:      "brew-1",
		IngredientID:   "pilsner-malt",
		Category:       "grain",
		RequiredAmount: decimal.NewFromInt(1),
	})
	if !errors.Is(err, apperr.ErrDataIntegrity) {
		t.Fatalf("expected data integrity error, got %v", err)
	}
}

func TestResolveUsesCache(t *testing.T) {
	lots := threeLots()
	cache := &mapCache{snaps: map[string]*availability.Snapshot{}}
	uc := newResolver(lots, nil, cache)

	first := resolve(t, uc, "7")
	second := resolve(t, uc, "7")

	if lots.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one fetch and one cache write, got %d and %d", lots.calls, cache.sets)
	}
	if first.LotsRequired != second.LotsRequired || !first.TotalAvailable.Equal(second.TotalAvailable) {
		t.Fatalf("cached verdict differs: %+v vs %+v", first, second)
	}
}

func TestComputeUnreachable(t *testing.T) {
	snap := &availability.Snapshot{Lots: threeLots().lots}
	res := Compute("pilsner-malt", model.CategoryGrain, decimal.NewFromInt(50), "kg", snap)

	if !res.IsAvailable || res.LotsRequired != 0 || res.CanFulfillSingleLot {
		t.Fatalf("unexpected verdict: %+v", res)
	}
	if res.HighestActiveSeverity != nil {
		t.Fatalf("nothing is used, so no severity is reported")
	}
	if snap.Lots[0].LotNumber != "L3" {
		t.Fatalf("Compute must not reorder the snapshot")
	}
}
