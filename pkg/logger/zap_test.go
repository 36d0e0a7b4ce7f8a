package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if parseLevel("debug") != zapcore.DebugLevel {
		t.Fatalf("expected debug level")
	}
	if parseLevel("nonsense") != zapcore.InfoLevel {
		t.Fatalf("expected info fallback")
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With(zap.String("lot_number", "L1"))

	log.Debug("hidden")
	log.Info("resolved availability", zap.Int("lots_required", 2))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry above info, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["lot_number"] != "L1" || ctx["lots_required"] != int64(2) {
		t.Fatalf("unexpected fields %v", ctx)
	}
}
