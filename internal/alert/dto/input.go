package dto

import "time"

// CreateAlertInput describes a new alert. Alerts created with the same
// EventID in one brewery share an id, so a replay returns the stored alert.
type CreateAlertInput struct {
	BreweryID         string
	EventID           string
	LotNumber         string
	Severity          string
	Title             string
	Description       string
	AlertType         string
	SupplierName      string
	SupplierReference string
	AffectedBatches   []string
	RecommendedAction string
	SourceURL         string
	Documents         []DocumentInput
	AlertDate         *time.Time
	ExpirationDate    *time.Time
}

type DocumentInput struct {
	Name        string
	StorageKey  string
	ContentType string
}

// ExpectedVersion, when set, is the version the caller last observed; a
// mismatch is reported as a conflict before any state check.
type AcknowledgeInput struct {
	BreweryID       string
	ID              string
	Notes           string
	ExpectedVersion *int64
}

type ResolveInput struct {
	BreweryID       string
	ID              string
	ResolutionNotes string
	ExpectedVersion *int64
}

type ArchiveInput struct {
	BreweryID       string
	ID              string
	ExpectedVersion *int64
}
