package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/lot"
	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/migrations"
	"github.com/fekuna/brewops-lot-service/pkg/database"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "lots.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := migrations.Up(context.Background(), db, migrations.DialectFor(db.DriverName())); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedLot(t *testing.T, repo *SQLRepository, number string, received, reserved string, day int) {
	t.Helper()
	l := &model.StockLot{
		BreweryID:        "brew-1",
		LotNumber:        number,
		IngredientID:     "G1",
		Category:         model.CategoryGrain,
		Unit:             "lbs",
		QuantityReceived: decimal.RequireFromString(received),
		QuantityReserved: decimal.RequireFromString(reserved),
		ReceivedDate:     time.Date(2026, time.January, day, 8, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), l); err != nil {
		t.Fatalf("create %s: %v", number, err)
	}
}

func filters(includeExhausted bool) *dto.LotFilters {
	return &dto.LotFilters{
		BreweryID:        "brew-1",
		IngredientID:     "G1",
		Category:         model.CategoryGrain,
		IncludeExhausted: includeExhausted,
	}
}

func TestListLotsFIFO(t *testing.T) {
	repo := NewSQLRepository(newTestDB(t))
	seedLot(t, repo, "L3", "4", "0", 5)
	seedLot(t, repo, "L2", "5", "0", 5)
	seedLot(t, repo, "L1", "10", "2", 1)

	lots, err := repo.ListLots(context.Background(), filters(false))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"L1", "L2", "L3"}
	if len(lots) != len(want) {
		t.Fatalf("expected %d lots, got %d", len(want), len(lots))
	}
	for i, w := range want {
		if lots[i].LotNumber != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, lots[i].LotNumber)
		}
	}
	if !lots[0].QuantityAvailable.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("expected L1 available 8, got %s", lots[0].QuantityAvailable)
	}
}

func TestListLotsEmptyIsNotAnError(t *testing.T) {
	repo := NewSQLRepository(newTestDB(t))
	lots, err := repo.ListLots(context.Background(), filters(false))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if lots == nil || len(lots) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", lots)
	}
}

func TestListLotsExhausted(t *testing.T) {
	repo := NewSQLRepository(newTestDB(t))
	seedLot(t, repo, "L1", "5", "5", 1)
	seedLot(t, repo, "L2", "2.5", "0.5", 2)

	lots, err := repo.ListLots(context.Background(), filters(false))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lots) != 1 || lots[0].LotNumber != "L2" {
		t.Fatalf("expected only L2, got %+v", lots)
	}
	if !lots[0].QuantityAvailable.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected 2 available, got %s", lots[0].QuantityAvailable)
	}

	all, err := repo.ListLots(context.Background(), filters(true))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected exhausted lot to be kept, got %d lots", len(all))
	}
}

func TestGetLotMissing(t *testing.T) {
	repo := NewSQLRepository(newTestDB(t))
	l, err := repo.GetLot(context.Background(), dto.LotKey{BreweryID: "brew-1", IngredientID: "G1", Category: model.CategoryGrain, LotNumber: "nope"})
	if err != nil || l != nil {
		t.Fatalf("expected nil, nil for missing lot, got %v %v", l, err)
	}
}

func TestUpdateReserved(t *testing.T) {
	repo := NewSQLRepository(newTestDB(t))
	seedLot(t, repo, "L1", "10", "0", 1)
	key := dto.LotKey{BreweryID: "brew-1", IngredientID: "G1", Category: model.CategoryGrain, LotNumber: "L1"}

	if err := repo.UpdateReserved(context.Background(), key, decimal.NewFromInt(6)); err != nil {
		t.Fatalf("update: %v", err)
	}
	l, err := repo.GetLot(context.Background(), key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !l.QuantityAvailable.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("expected 4 available, got %s", l.QuantityAvailable)
	}

	err = repo.UpdateReserved(context.Background(), key, decimal.NewFromInt(11))
	if !errors.Is(err, lot.ErrNotUpdated) {
		t.Fatalf("expected ErrNotUpdated when over-reserving, got %v", err)
	}
}
