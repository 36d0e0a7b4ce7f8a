package auth

import (
	"context"
	"testing"

	"google.golang.org/grpc/metadata"
)

func TestGetBreweryIDPrefersContextValue(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(MetadataBreweryID, "from-md"))
	ctx = WithBreweryID(ctx, "from-ctx")
	if got := GetBreweryID(ctx); got != "from-ctx" {
		t.Fatalf("expected from-ctx, got %q", got)
	}
}

func TestGetBreweryIDFallsBackToMetadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(MetadataBreweryID, "b-1"))
	if got := GetBreweryID(ctx); got != "b-1" {
		t.Fatalf("expected b-1, got %q", got)
	}
	if got := GetBreweryID(context.Background()); got != "" {
		t.Fatalf("expected empty brewery, got %q", got)
	}
}
