package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryGrain    Category = "grain"
	CategoryHop      Category = "hop"
	CategoryYeast    Category = "yeast"
	CategoryAdditive Category = "additive"
)

// ParseCategory accepts any casing ("Grain", "grain") and rejects unknown values.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryGrain, CategoryHop, CategoryYeast, CategoryAdditive:
		return c, nil
	default:
		return "", fmt.Errorf("unknown ingredient category %q", s)
	}
}

type StockLot struct {
	BreweryID         string           `db:"brewery_id" json:"brewery_id"`
	LotNumber         string           `db:"lot_number" json:"lot_number"`
	IngredientID      string           `db:"ingredient_id" json:"ingredient_id"`
	Category          Category         `db:"category" json:"category"`
	Unit              string           `db:"unit" json:"unit"`
	QuantityReceived  decimal.Decimal  `db:"quantity_received" json:"quantity_received"`
	QuantityReserved  decimal.Decimal  `db:"quantity_reserved" json:"quantity_reserved"`
	QuantityAvailable decimal.Decimal  `db:"-" json:"quantity_available"` // Derived: received - reserved
	ReceivedDate      time.Time        `db:"received_date" json:"received_date"`
	ExpirationDate    *time.Time       `db:"expiration_date" json:"expiration_date,omitempty"`
	UnitCost          *decimal.Decimal `db:"unit_cost" json:"unit_cost,omitempty"`
	SupplierName      *string          `db:"supplier_name" json:"supplier_name,omitempty"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

// Validate checks the derived quantity invariant. A failure means the
// reservation data is corrupt, not that stock ran out.
func (l *StockLot) Validate() error {
	if l.QuantityReceived.IsNegative() {
		return fmt.Errorf("lot %s: quantity received %s is negative", l.LotNumber, l.QuantityReceived)
	}
	if l.QuantityReserved.IsNegative() {
		return fmt.Errorf("lot %s: quantity reserved %s is negative", l.LotNumber, l.QuantityReserved)
	}
	expected := l.QuantityReceived.Sub(l.QuantityReserved)
	if !l.QuantityAvailable.Equal(expected) {
		return fmt.Errorf("lot %s: quantity available %s != received %s - reserved %s",
			l.LotNumber, l.QuantityAvailable, l.QuantityReceived, l.QuantityReserved)
	}
	if l.QuantityAvailable.IsNegative() {
		return fmt.Errorf("lot %s: quantity available %s is negative", l.LotNumber, l.QuantityAvailable)
	}
	return nil
}

// PercentageRemaining is available/received*100, or zero for an empty intake.
func (l *StockLot) PercentageRemaining() decimal.Decimal {
	if l.QuantityReceived.IsZero() {
		return decimal.Zero
	}
	return l.QuantityAvailable.Div(l.QuantityReceived).Mul(decimal.NewFromInt(100)).Round(2)
}

func (l *StockLot) IsExhausted() bool {
	return !l.QuantityAvailable.IsPositive()
}

// SortLotsFIFO orders lots first-received-first-consumed, ties by lot number.
func SortLotsFIFO(lots []StockLot) {
	sort.SliceStable(lots, func(i, j int) bool {
		if !lots[i].ReceivedDate.Equal(lots[j].ReceivedDate) {
			return lots[i].ReceivedDate.Before(lots[j].ReceivedDate)
		}
		return lots[i].LotNumber < lots[j].LotNumber
	})
}
