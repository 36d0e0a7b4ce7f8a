package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/apperr"
	"github.com/fekuna/brewops-lot-service/internal/auth"
	availDto "github.com/fekuna/brewops-lot-service/internal/availability/dto"
	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	lotv1 "github.com/fekuna/brewops-lot-service/pkg/api/lotv1"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubAvailability struct {
	input *availDto.ResolveInput
	res   *model.AvailabilityResult
	err   error
}

func (s *stubAvailability) Resolve(_ context.Context, input *availDto.ResolveInput) (*model.AvailabilityResult, error) {
	s.input = input
	return s.res, s.err
}

type stubLots struct {
	filters *dto.LotFilters
	lots    []model.StockLot
}

func (s *stubLots) ListLots(_ context.Context, f *dto.LotFilters) ([]model.StockLot, error) {
	s.filters = f
	return s.lots, nil
}

func (s *stubLots) ReceiveLot(context.Context, *dto.ReceiveLotInput) (*model.StockLot, error) {
	return nil, nil
}

func (s *stubLots) UpdateReserved(context.Context, *dto.UpdateReservedInput) (*model.StockLot, error) {
	return nil, nil
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "0", false},
		{" 12.5 ", "12.5", false},
		{"0", "0", false},
		{"a dozen", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			if !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("%q: expected invalid argument, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Fatalf("%q: got %s, %v", tt.in, got, err)
		}
	}
}

func TestResolveAvailability(t *testing.T) {
	sev := model.SeverityWarning
	avail := &stubAvailability{res: &model.AvailabilityResult{
		IsAvailable:           true,
		CanFulfillSingleLot:   true,
		TotalAvailable:        decimal.RequireFromString("12.5"),
		LotsRequired:          1,
		HighestActiveSeverity: &sev,
		Lots: []model.LotAvailability{{
			LotNumber:           "L1",
			QuantityAvailable:   decimal.RequireFromString("12.5"),
			QuantityReceived:    decimal.NewFromInt(25),
			PercentageRemaining: decimal.NewFromInt(50),
			ReceivedDate:        time.Date(2026, time.January, 2, 15, 0, 0, 0, time.UTC),
			UsedForFulfillment:  true,
		}},
	}}
	h := NewLotHandler(&stubLots{}, avail, logger.NewNop())

	ctx := auth.WithBreweryID(context.Background(), "brew-1")
	resp, err := h.ResolveAvailability(ctx, &lotv1.ResolveAvailabilityRequest{
		IngredientId:   "citra",
		Category:       "hop",
		RequiredAmount: "3",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if avail.input.BreweryID != "brew-1" || !avail.input.RequiredAmount.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("unexpected input: %+v", avail.input)
	}
	if resp.TotalAvailable != "12.5" || resp.HighestActiveSeverity != "warning" || resp.LotsRequired != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.Lots[0].ReceivedDate.AsTime().Equal(time.Date(2026, time.January, 2, 15, 0, 0, 0, time.UTC)) || !resp.Lots[0].UsedForFulfillment {
		t.Fatalf("unexpected lot: %+v", resp.Lots[0])
	}
}

func TestResolveAvailabilityErrors(t *testing.T) {
	h := NewLotHandler(&stubLots{}, &stubAvailability{err: apperr.DataIntegrity(errors.New("reserved > received"))}, logger.NewNop())

	_, err := h.ResolveAvailability(context.Background(), &lotv1.ResolveAvailabilityRequest{RequiredAmount: "x"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	_, err = h.ResolveAvailability(context.Background(), &lotv1.ResolveAvailabilityRequest{RequiredAmount: "1"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal for integrity errors, got %v", err)
	}
}

func TestListLots(t *testing.T) {
	lots := &stubLots{lots: []model.StockLot{{
		LotNumber:         "L1",
		IngredientID:      "citra",
		Category:          model.CategoryHop,
		QuantityReceived:  decimal.NewFromInt(10),
		QuantityReserved:  decimal.NewFromInt(4),
		QuantityAvailable: decimal.NewFromInt(6),
	}}}
	h := NewLotHandler(lots, &stubAvailability{}, logger.NewNop())

	resp, err := h.ListLots(auth.WithBreweryID(context.Background(), "brew-1"), &lotv1.ListLotsRequest{
		IngredientId:     "citra",
		Category:         "HOP",
		IncludeExhausted: true,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if lots.filters.Category != model.CategoryHop || !lots.filters.IncludeExhausted {
		t.Fatalf("unexpected filters: %+v", lots.filters)
	}
	if len(resp.Lots) != 1 || resp.Lots[0].QuantityAvailable != "6" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if _, err := h.ListLots(context.Background(), &lotv1.ListLotsRequest{Category: "fruit"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
