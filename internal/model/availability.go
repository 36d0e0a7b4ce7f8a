package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotAvailability is one lot's line in an availability verdict.
type LotAvailability struct {
	LotNumber             string          `json:"lot_number"`
	Unit                  string          `json:"unit,omitempty"`
	QuantityAvailable     decimal.Decimal `json:"quantity_available"`
	QuantityReceived      decimal.Decimal `json:"quantity_received"`
	PercentageRemaining   decimal.Decimal `json:"percentage_remaining"`
	ReceivedDate          time.Time       `json:"received_date"`
	ExpirationDate        *time.Time      `json:"expiration_date,omitempty"`
	HighestActiveSeverity *Severity       `json:"highest_active_severity,omitempty"`
	HasActiveAlerts       bool            `json:"has_active_alerts"`
	HasAcknowledgedAlerts bool            `json:"has_acknowledged_alerts"`
	UsedForFulfillment    bool            `json:"used_for_fulfillment"`
}

// AvailabilityResult answers whether an amount could be drawn from stock.
// It is advisory: nothing is reserved. HighestActiveSeverity is the worst
// Active alert across the lots used for fulfillment.
type AvailabilityResult struct {
	IngredientID          string            `json:"ingredient_id"`
	Category              Category          `json:"category"`
	RequiredAmount        decimal.Decimal   `json:"required_amount"`
	Unit                  string            `json:"unit,omitempty"`
	IsAvailable           bool              `json:"is_available"`
	CanFulfillSingleLot   bool              `json:"can_fulfill_single_lot"`
	TotalAvailable        decimal.Decimal   `json:"total_available"`
	LotsRequired          int               `json:"lots_required"`
	HighestActiveSeverity *Severity         `json:"highest_active_severity,omitempty"`
	Lots                  []LotAvailability `json:"lots"`
}
