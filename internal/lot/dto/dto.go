package dto

import "github.com/fekuna/brewops-lot-service/internal/model"

type LotFilters struct {
	BreweryID        string
	IngredientID     string
	Category         model.Category
	IncludeExhausted bool
}

// LotKey identifies one lot; lot numbers are only unique per ingredient and category.
type LotKey struct {
	BreweryID    string
	IngredientID string
	Category     model.Category
	LotNumber    string
}
