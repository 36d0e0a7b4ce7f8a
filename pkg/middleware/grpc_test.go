package middleware

import (
	"context"
	"testing"

	"github.com/fekuna/brewops-lot-service/internal/auth"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/brewops.lot.v1.LotService/ListLots"}

func TestContextInterceptorSetsBrewery(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.MetadataBreweryID, "brew-1"))

	var got string
	_, err := ContextInterceptor()(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		got = auth.GetBreweryID(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "brew-1" {
		t.Fatalf("expected brew-1, got %q", got)
	}
}

func TestContextInterceptorRejectsMissingBrewery(t *testing.T) {
	called := false
	next := func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	}

	_, err := ContextInterceptor()(context.Background(), nil, info, next)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument without metadata, got %v", err)
	}

	blank := metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.MetadataBreweryID, " "))
	_, err = ContextInterceptor()(blank, nil, info, next)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for a blank brewery, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run without a brewery")
	}
}

func TestContextInterceptorLetsHealthChecksThrough(t *testing.T) {
	health := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	called := false
	_, err := ContextInterceptor()(context.Background(), nil, health, func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	})
	if err != nil || !called {
		t.Fatalf("health check should pass without a brewery: called=%v err=%v", called, err)
	}
}

func TestRecoveryInterceptorConvertsPanic(t *testing.T) {
	_, err := RecoveryInterceptor(logger.NewNop())(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	want := status.Error(codes.NotFound, "missing")
	_, err := LoggingInterceptor(logger.NewNop())(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, want
	})
	if err != want {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}
}
