package dto

import "github.com/shopspring/decimal"

type ResolveInput struct {
	BreweryID      string
	IngredientID   string
	Category       string
	RequiredAmount decimal.Decimal
	Unit           string
}
