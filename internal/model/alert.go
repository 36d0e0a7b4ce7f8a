package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Severity is ordered: Info < Warning < Critical < Recall.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	SeverityRecall   Severity = "recall"
)

var severityRank = map[Severity]int{
	SeverityInfo:     1,
	SeverityWarning:  2,
	SeverityCritical: 3,
	SeverityRecall:   4,
}

func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := severityRank[sev]; !ok {
		return "", fmt.Errorf("unknown alert severity %q", s)
	}
	return sev, nil
}

// Rank returns 0 for unknown severities so they never win a comparison.
func (s Severity) Rank() int { return severityRank[s] }

func (s Severity) Outranks(other Severity) bool { return s.Rank() > other.Rank() }

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusArchived     AlertStatus = "archived"
)

var statusOrder = map[AlertStatus]int{
	AlertStatusActive:       0,
	AlertStatusAcknowledged: 1,
	AlertStatusResolved:     2,
	AlertStatusArchived:     3,
}

var allowedTransitions = map[AlertStatus][]AlertStatus{
	AlertStatusActive:       {AlertStatusAcknowledged, AlertStatusResolved},
	AlertStatusAcknowledged: {AlertStatusResolved},
	AlertStatusResolved:     {AlertStatusArchived},
	AlertStatusArchived:     nil,
}

func ParseAlertStatus(s string) (AlertStatus, error) {
	st := AlertStatus(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := statusOrder[st]; !ok {
		return "", fmt.Errorf("unknown alert status %q", s)
	}
	return st, nil
}

// CanTransitionTo reports whether next is a legal forward move from s.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AtLeast reports whether s is other or later in the lifecycle.
func (s AlertStatus) AtLeast(other AlertStatus) bool {
	return statusOrder[s] >= statusOrder[other]
}

func (s AlertStatus) IsTerminal() bool { return s == AlertStatusArchived }

type AlertDocument struct {
	Name        string `json:"name"`
	StorageKey  string `json:"storage_key"`
	ContentType string `json:"content_type,omitempty"`
}

type LotAlert struct {
	ID                string                  `db:"id" json:"lot_alert_id"`
	BreweryID         string                  `db:"brewery_id" json:"brewery_id"`
	LotNumber         string                  `db:"lot_number" json:"lot_number"`
	Severity          Severity                `db:"severity" json:"severity"`
	Status            AlertStatus             `db:"status" json:"status"`
	Title             string                  `db:"title" json:"title"`
	Description       string                  `db:"description" json:"description"`
	AlertType         string                  `db:"alert_type" json:"alert_type"`
	SupplierName      *string                 `db:"supplier_name" json:"supplier_name,omitempty"`
	SupplierReference *string                 `db:"supplier_reference" json:"supplier_reference,omitempty"`
	AffectedBatches   JSONList[string]        `db:"affected_batches" json:"affected_batches"`
	RecommendedAction *string                 `db:"recommended_action" json:"recommended_action,omitempty"`
	SourceURL         *string                 `db:"source_url" json:"source_url,omitempty"`
	Documents         JSONList[AlertDocument] `db:"documents" json:"documents"`
	AlertDate         time.Time               `db:"alert_date" json:"alert_date"`
	AcknowledgedDate  *time.Time              `db:"acknowledged_date" json:"acknowledged_date,omitempty"`
	InternalNotes     *string                 `db:"internal_notes" json:"internal_notes,omitempty"`
	ResolvedDate      *time.Time              `db:"resolved_date" json:"resolved_date,omitempty"`
	ResolutionNotes   *string                 `db:"resolution_notes" json:"resolution_notes,omitempty"`
	ExpirationDate    *time.Time              `db:"expiration_date" json:"expiration_date,omitempty"`
	Version           int64                   `db:"version" json:"version"`
	UpdatedAt         time.Time               `db:"updated_at" json:"updated_at"`
}

// IsExpired reports whether a self-expiring alert has lapsed at now.
func (a *LotAlert) IsExpired(now time.Time) bool {
	return a.ExpirationDate != nil && !a.ExpirationDate.After(now)
}

// CheckInvariants verifies that lifecycle timestamps and notes match the status.
func (a *LotAlert) CheckInvariants() error {
	acknowledgedOrLater := a.Status.AtLeast(AlertStatusAcknowledged)
	resolvedOrLater := a.Status.AtLeast(AlertStatusResolved)

	if acknowledgedOrLater && a.AcknowledgedDate == nil {
		return fmt.Errorf("alert %s: %s without acknowledged date", a.ID, a.Status)
	}
	if !acknowledgedOrLater && a.AcknowledgedDate != nil {
		return fmt.Errorf("alert %s: acknowledged date set while %s", a.ID, a.Status)
	}
	hasResolution := a.ResolvedDate != nil && a.ResolutionNotes != nil && strings.TrimSpace(*a.ResolutionNotes) != ""
	if resolvedOrLater && !hasResolution {
		return fmt.Errorf("alert %s: %s without resolution date and notes", a.ID, a.Status)
	}
	if !resolvedOrLater && (a.ResolvedDate != nil || a.ResolutionNotes != nil) {
		return fmt.Errorf("alert %s: resolution recorded while %s", a.ID, a.Status)
	}
	return nil
}

// Normalize replaces nil collections with empty ones.
func (a *LotAlert) Normalize() {
	if a.AffectedBatches == nil {
		a.AffectedBatches = JSONList[string]{}
	}
	if a.Documents == nil {
		a.Documents = JSONList[AlertDocument]{}
	}
}

// JSONList stores a slice as a JSON text column.
type JSONList[T any] []T

func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]T(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *JSONList[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = JSONList[T]{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("JSONList: unsupported source type %T", src)
	}
	if len(raw) == 0 {
		*l = JSONList[T]{}
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if out == nil {
		out = []T{}
	}
	*l = out
	return nil
}
