package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/lot"
	"github.com/fekuna/brewops-lot-service/internal/lot/dto"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/broker"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LotListener applies lot intake and reservation events published by the
// receiving and production subsystems.
type LotListener struct {
	consumer broker.MessageReader
	uc       lot.UseCase
	logger   logger.ZapLogger
}

func NewLotListener(consumer broker.MessageReader, uc lot.UseCase, logger logger.ZapLogger) *LotListener {
	return &LotListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *LotListener) Start(ctx context.Context) {
	l.logger.Info("Starting Lot Kafka Listener")
	broker.Consume(ctx, l.consumer, l.logger, l.processMessage)
	l.logger.Info("Stopping Lot Kafka Listener")
}

const (
	EventLotReceived           = "LotReceived"
	EventLotReservationChanged = "LotReservationChanged"
)

type LotEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   LotEventPayload `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type LotEventPayload struct {
	BreweryID        string           `json:"brewery_id"`
	LotNumber        string           `json:"lot_number"`
	IngredientID     string           `json:"ingredient_id"`
	Category         string           `json:"category"`
	Unit             string           `json:"unit"`
	QuantityReceived decimal.Decimal  `json:"quantity_received"`
	QuantityReserved decimal.Decimal  `json:"quantity_reserved"`
	ReceivedDate     time.Time        `json:"received_date"`
	ExpirationDate   *time.Time       `json:"expiration_date"`
	UnitCost         *decimal.Decimal `json:"unit_cost"`
	SupplierName     string           `json:"supplier_name"`
}

func (l *LotListener) processMessage(ctx context.Context, value []byte) {
	var event LotEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	p := event.Payload
	switch event.EventType {
	case EventLotReceived:
		_, err := l.uc.ReceiveLot(ctx, &dto.ReceiveLotInput{
			BreweryID:        p.BreweryID,
			LotNumber:        p.LotNumber,
			IngredientID:     p.IngredientID,
			Category:         p.Category,
			Unit:             p.Unit,
			QuantityReceived: p.QuantityReceived,
			ReceivedDate:     p.ReceivedDate,
			ExpirationDate:   p.ExpirationDate,
			UnitCost:         p.UnitCost,
			SupplierName:     p.SupplierName,
		})
		if err != nil {
			l.logger.Error("Failed to record received lot",
				zap.String("event_id", event.EventID),
				zap.String("lot_number", p.LotNumber),
				zap.Error(err),
			)
		}
	case EventLotReservationChanged:
		category, err := model.ParseCategory(p.Category)
		if err != nil {
			l.logger.Error("Invalid category in reservation event", zap.String("event_id", event.EventID), zap.Error(err))
			return
		}
		_, err = l.uc.UpdateReserved(ctx, &dto.UpdateReservedInput{
			Key: dto.LotKey{
				BreweryID:    p.BreweryID,
				IngredientID: p.IngredientID,
				Category:     category,
				LotNumber:    p.LotNumber,
			},
			QuantityReserved: p.QuantityReserved,
		})
		if err != nil {
			l.logger.Error("Failed to apply reservation change",
				zap.String("event_id", event.EventID),
				zap.String("lot_number", p.LotNumber),
				zap.Error(err),
			)
		}
	}
}
