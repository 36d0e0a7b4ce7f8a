package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/lot"
	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const lotColumns = `
        brewery_id, lot_number, ingredient_id, category, unit,
        quantity_received, quantity_reserved,
        received_date, expiration_date, unit_cost, supplier_name, updated_at`

// SQLRepository works against both the pgx and the sqlite driver; queries
// are written with ? placeholders and rebound per driver.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) ListLots(ctx context.Context, f *dto.LotFilters) ([]model.StockLot, error) {
	conditions := []string{"brewery_id = ?", "ingredient_id = ?", "category = ?"}
	args := []interface{}{f.BreweryID, f.IngredientID, string(f.Category)}

	if !f.IncludeExhausted {
		conditions = append(conditions, "quantity_received > quantity_reserved")
	}

	query := "SELECT" + lotColumns + " FROM stock_lots WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY received_date ASC, lot_number ASC"

	lots := []model.StockLot{}
	if err := r.DB.SelectContext(ctx, &lots, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	for i := range lots {
		deriveAvailable(&lots[i])
	}
	return lots, nil
}

func (r *SQLRepository) GetLot(ctx context.Context, key dto.LotKey) (*model.StockLot, error) {
	query := "SELECT" + lotColumns + ` FROM stock_lots
        WHERE brewery_id = ? AND ingredient_id = ? AND category = ? AND lot_number = ?`

	var lot model.StockLot
	err := r.DB.GetContext(ctx, &lot, r.DB.Rebind(query), key.BreweryID, key.IngredientID, string(key.Category), key.LotNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // caller decides whether absence is an error
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	deriveAvailable(&lot)
	return &lot, nil
}

// deriveAvailable fills the derived quantity; negativity is left for
// StockLot.Validate to report.
func deriveAvailable(lot *model.StockLot) {
	lot.QuantityAvailable = lot.QuantityReceived.Sub(lot.QuantityReserved)
}

func (r *SQLRepository) Create(ctx context.Context, lot *model.StockLot) error {
	query := `
        INSERT INTO stock_lots (
            brewery_id, lot_number, ingredient_id, category, unit,
            quantity_received, quantity_reserved, received_date, expiration_date,
            unit_cost, supplier_name, updated_at
        )
        VALUES (
            :brewery_id, :lot_number, :ingredient_id, :category, :unit,
            :quantity_received, :quantity_reserved, :received_date, :expiration_date,
            :unit_cost, :supplier_name, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, lot); err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// UpdateReserved refuses to reserve more than was received; a refused or
// missing row yields lot.ErrNotUpdated.
func (r *SQLRepository) UpdateReserved(ctx context.Context, key dto.LotKey, reserved decimal.Decimal) error {
	query := `
        UPDATE stock_lots
        SET quantity_reserved = ?, updated_at = ?
        WHERE brewery_id = ? AND ingredient_id = ? AND category = ? AND lot_number = ?
          AND quantity_received >= ?
    `
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(query),
		reserved, time.Now().UTC(),
		key.BreweryID, key.IngredientID, string(key.Category), key.LotNumber,
		reserved,
	)
	if err != nil {
		return fmt.Errorf("update reserved: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update reserved: %w", err)
	}
	if n == 0 {
		return lot.ErrNotUpdated
	}
	return nil
}
