package model

// LotRisk is the badge-level summary of the alerts in force on one lot.
type LotRisk struct {
	LotNumber string `json:"lot_number"`
	// HighestActiveSeverity is nil when no Active alert is in force.
	HighestActiveSeverity *Severity `json:"highest_active_severity,omitempty"`
	HasActiveAlerts       bool      `json:"has_active_alerts"`
	HasAcknowledgedAlerts bool      `json:"has_acknowledged_alerts"`
	ActiveAlertCount      int       `json:"active_alert_count"`
}

// HighestOf returns the more severe of two optional severities.
func HighestOf(a, b *Severity) *Severity {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Outranks(*a):
		return b
	default:
		return a
	}
}
