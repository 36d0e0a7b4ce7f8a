package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiveLotInput struct {
	BreweryID        string
	LotNumber        string
	IngredientID     string
	Category         string
	Unit             string
	QuantityReceived decimal.Decimal
	ReceivedDate     time.Time
	ExpirationDate   *time.Time
	UnitCost         *decimal.Decimal
	SupplierName     string
}

// UpdateReservedInput sets the reserved quantity maintained by the
// reservation subsystem.
type UpdateReservedInput struct {
	Key              LotKey
	QuantityReserved decimal.Decimal
}
