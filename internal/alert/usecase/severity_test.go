package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
)

func alertWith(id, lot string, sev model.Severity, status model.AlertStatus) model.LotAlert {
	a := activeAlert(id)
	a.LotNumber = lot
	a.Severity = sev
	a.Status = status
	return a
}

func TestSummarizeHighestActive(t *testing.T) {
	alerts := []model.LotAlert{
		alertWith("a1", "L1", model.SeverityWarning, model.AlertStatusActive),
		alertWith("a2", "L1", model.SeverityCritical, model.AlertStatusActive),
		alertWith("a3", "L1", model.SeverityRecall, model.AlertStatusResolved),
	}

	risk := Summarize("L1", alerts, fixedNow)
	if risk.HighestActiveSeverity == nil || *risk.HighestActiveSeverity != model.SeverityCritical {
		t.Fatalf("expected critical, got %v", risk.HighestActiveSeverity)
	}
	if !risk.HasActiveAlerts || risk.ActiveAlertCount != 2 || risk.HasAcknowledgedAlerts {
		t.Fatalf("unexpected risk: %+v", risk)
	}
}

func TestSummarizeAcknowledgedOnly(t *testing.T) {
	alerts := []model.LotAlert{
		alertWith("a1", "L1", model.SeverityRecall, model.AlertStatusAcknowledged),
	}

	risk := Summarize("L1", alerts, fixedNow)
	if risk.HighestActiveSeverity != nil || risk.HasActiveAlerts {
		t.Fatalf("acknowledged alerts must not raise severity: %+v", risk)
	}
	if !risk.HasAcknowledgedAlerts {
		t.Fatalf("expected acknowledged flag")
	}
}

func TestSummarizeSkipsExpired(t *testing.T) {
	expired := alertWith("a1", "L1", model.SeverityRecall, model.AlertStatusActive)
	past := fixedNow.Add(-time.Minute)
	expired.ExpirationDate = &past

	live := alertWith("a2", "L1", model.SeverityInfo, model.AlertStatusActive)
	future := fixedNow.Add(time.Hour)
	live.ExpirationDate = &future

	risk := Summarize("L1", []model.LotAlert{expired, live}, fixedNow)
	if risk.HighestActiveSeverity == nil || *risk.HighestActiveSeverity != model.SeverityInfo {
		t.Fatalf("expected info, got %v", risk.HighestActiveSeverity)
	}
	if risk.ActiveAlertCount != 1 {
		t.Fatalf("expected one active alert, got %d", risk.ActiveAlertCount)
	}
}

func TestSummarizeNone(t *testing.T) {
	risk := Summarize("L1", nil, fixedNow)
	if risk.HighestActiveSeverity != nil || risk.HasActiveAlerts || risk.LotNumber != "L1" {
		t.Fatalf("unexpected risk: %+v", risk)
	}
}

func TestSummarizeLots(t *testing.T) {
	repo := newMemoryRepo(
		alertWith("a1", "L1", model.SeverityWarning, model.AlertStatusActive),
		alertWith("a2", "L2", model.SeverityRecall, model.AlertStatusActive),
		alertWith("a3", "L3", model.SeverityRecall, model.AlertStatusActive),
	)
	agg := NewSeverityAggregator(repo, logger.NewNop()).(*severityAggregator)
	agg.nowFn = func() time.Time { return fixedNow }

	risks, err := agg.SummarizeLots(context.Background(), "brew-1", []string{"L1", "L2", "L9"})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(risks) != 3 {
		t.Fatalf("expected an entry per requested lot, got %d", len(risks))
	}
	if *risks["L1"].HighestActiveSeverity != model.SeverityWarning || *risks["L2"].HighestActiveSeverity != model.SeverityRecall {
		t.Fatalf("unexpected risks: %+v", risks)
	}
	if risks["L9"].HasActiveAlerts {
		t.Fatalf("lot without alerts must be clean")
	}
	if _, ok := risks["L3"]; ok {
		t.Fatalf("unrequested lot leaked into result")
	}
}

func TestHighestActiveSeverityForLot(t *testing.T) {
	repo := newMemoryRepo(
		alertWith("a1", "L1", model.SeverityWarning, model.AlertStatusActive),
		alertWith("a2", "L1", model.SeverityCritical, model.AlertStatusAcknowledged),
	)
	agg := NewSeverityAggregator(repo, logger.NewNop()).(*severityAggregator)
	agg.nowFn = func() time.Time { return fixedNow }

	risk, err := agg.HighestActiveSeverity(context.Background(), "brew-1", "L1")
	if err != nil {
		t.Fatalf("highest: %v", err)
	}
	if *risk.HighestActiveSeverity != model.SeverityWarning || !risk.HasAcknowledgedAlerts {
		t.Fatalf("unexpected risk: %+v", risk)
	}
}
