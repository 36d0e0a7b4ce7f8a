package model

import (
	"testing"
	"time"
)

func TestSeverityOrdering(t *testing.T) {
	order := []Severity{SeverityInfo, SeverityWarning, SeverityCritical, SeverityRecall}
	for i := 1; i < len(order); i++ {
		if !order[i].Outranks(order[i-1]) {
			t.Fatalf("%s should outrank %s", order[i], order[i-1])
		}
	}

	sev, err := ParseSeverity("RECALL")
	if err != nil || sev != SeverityRecall {
		t.Fatalf("expected recall, got %q %v", sev, err)
	}
	if _, err := ParseSeverity("urgent"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}

func TestHighestOf(t *testing.T) {
	w, c := SeverityWarning, SeverityCritical
	if got := HighestOf(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
	if got := HighestOf(&w, nil); *got != SeverityWarning {
		t.Fatalf("expected warning, got %s", *got)
	}
	if got := HighestOf(&w, &c); *got != SeverityCritical {
		t.Fatalf("expected critical, got %s", *got)
	}
	if got := HighestOf(&c, &w); *got != SeverityCritical {
		t.Fatalf("expected critical, got %s", *got)
	}
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to AlertStatus
		ok       bool
	}{
		{AlertStatusActive, AlertStatusAcknowledged, true},
		{AlertStatusActive, AlertStatusResolved, true},
		{AlertStatusAcknowledged, AlertStatusResolved, true},
		{AlertStatusResolved, AlertStatusArchived, true},
		{AlertStatusActive, AlertStatusArchived, false},
		{AlertStatusAcknowledged, AlertStatusAcknowledged, false},
		{AlertStatusAcknowledged, AlertStatusActive, false},
		{AlertStatusResolved, AlertStatusAcknowledged, false},
		{AlertStatusArchived, AlertStatusActive, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
	if !AlertStatusArchived.IsTerminal() || AlertStatusResolved.IsTerminal() {
		t.Fatalf("only archived is terminal")
	}
}

func TestCheckInvariants(t *testing.T) {
	now := time.Now().UTC()
	notes := "supplier confirmed"

	active := LotAlert{ID: "a", Status: AlertStatusActive}
	if err := active.CheckInvariants(); err != nil {
		t.Fatalf("active alert: %v", err)
	}

	ackWithoutDate := LotAlert{ID: "b", Status: AlertStatusAcknowledged}
	if err := ackWithoutDate.CheckInvariants(); err == nil {
		t.Fatalf("expected error for acknowledged alert without date")
	}

	resolved := LotAlert{ID: "c", Status: AlertStatusResolved, AcknowledgedDate: &now, ResolvedDate: &now, ResolutionNotes: &notes}
	if err := resolved.CheckInvariants(); err != nil {
		t.Fatalf("resolved alert: %v", err)
	}

	blank := "  "
	resolvedBlank := LotAlert{ID: "d", Status: AlertStatusResolved, AcknowledgedDate: &now, ResolvedDate: &now, ResolutionNotes: &blank}
	if err := resolvedBlank.CheckInvariants(); err == nil {
		t.Fatalf("expected error for blank resolution notes")
	}

	activeWithResolution := LotAlert{ID: "e", Status: AlertStatusActive, ResolvedDate: &now}
	if err := activeWithResolution.CheckInvariants(); err == nil {
		t.Fatalf("expected error for active alert with resolution date")
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now().UTC()
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	if (&LotAlert{}).IsExpired(now) {
		t.Fatalf("alert without expiration never expires")
	}
	if !(&LotAlert{ExpirationDate: &past}).IsExpired(now) {
		t.Fatalf("expected past expiration to be expired")
	}
	if (&LotAlert{ExpirationDate: &future}).IsExpired(now) {
		t.Fatalf("expected future expiration to be in force")
	}
}

func TestJSONListScan(t *testing.T) {
	var l JSONList[string]
	if err := l.Scan(nil); err != nil || l == nil || len(l) != 0 {
		t.Fatalf("nil source should scan to empty list, got %v %v", l, err)
	}
	if err := l.Scan(`["B-1","B-2"]`); err != nil || len(l) != 2 || l[1] != "B-2" {
		t.Fatalf("unexpected scan result %v %v", l, err)
	}
	if err := l.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported source")
	}

	var empty JSONList[AlertDocument]
	v, err := empty.Value()
	if err != nil || v != "[]" {
		t.Fatalf("nil list should store as [], got %v %v", v, err)
	}
}
