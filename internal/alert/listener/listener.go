package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/alert"
	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	"github.com/fekuna/brewops-lot-service/pkg/broker"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"go.uber.org/zap"
)

// AlertListener turns supplier and recall notices into Active lot alerts.
type AlertListener struct {
	consumer broker.MessageReader
	uc       alert.UseCase
	logger   logger.ZapLogger
}

func NewAlertListener(consumer broker.MessageReader, uc alert.UseCase, logger logger.ZapLogger) *AlertListener {
	return &AlertListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *AlertListener) Start(ctx context.Context) {
	l.logger.Info("Starting Lot Alert Kafka Listener")
	broker.Consume(ctx, l.consumer, l.logger, l.processMessage)
	l.logger.Info("Stopping Lot Alert Kafka Listener")
}

const EventLotAlertIssued = "LotAlertIssued"

type AlertEvent struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"event_type"`
	Payload   AlertEventPayload `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
}

type AlertEventPayload struct {
	BreweryID         string          `json:"brewery_id"`
	LotNumber         string          `json:"lot_number"`
	Severity          string          `json:"severity"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	AlertType         string          `json:"alert_type"`
	SupplierName      string          `json:"supplier_name"`
	SupplierReference string          `json:"supplier_reference"`
	AffectedBatches   []string        `json:"affected_batches"`
	RecommendedAction string          `json:"recommended_action"`
	SourceURL         string          `json:"source_url"`
	Documents         []EventDocument `json:"documents"`
	AlertDate         *time.Time      `json:"alert_date"`
	ExpirationDate    *time.Time      `json:"expiration_date"`
}

type EventDocument struct {
	Name        string `json:"name"`
	StorageKey  string `json:"storage_key"`
	ContentType string `json:"content_type"`
}

func (l *AlertListener) processMessage(ctx context.Context, value []byte) {
	var event AlertEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}
	if event.EventType != EventLotAlertIssued {
		return
	}

	p := event.Payload
	docs := make([]dto.DocumentInput, 0, len(p.Documents))
	for _, d := range p.Documents {
		docs = append(docs, dto.DocumentInput{Name: d.Name, StorageKey: d.StorageKey, ContentType: d.ContentType})
	}

	a, err := l.uc.CreateAlert(ctx, &dto.CreateAlertInput{
		BreweryID:         p.BreweryID,
		EventID:           event.EventID,
		LotNumber:         p.LotNumber,
		Severity:          p.Severity,
		Title:             p.Title,
		Description:       p.Description,
		AlertType:         p.AlertType,
		SupplierName:      p.SupplierName,
		SupplierReference: p.SupplierReference,
		AffectedBatches:   p.AffectedBatches,
		RecommendedAction: p.RecommendedAction,
		SourceURL:         p.SourceURL,
		Documents:         docs,
		AlertDate:         p.AlertDate,
		ExpirationDate:    p.ExpirationDate,
	})
	if err != nil {
		l.logger.Error("Failed to create lot alert from event",
			zap.String("event_id", event.EventID),
			zap.String("lot_number", p.LotNumber),
			zap.Error(err),
		)
		return
	}
	l.logger.Debug("Lot alert ingested",
		zap.String("event_id", event.EventID),
		zap.String("lot_alert_id", a.ID),
	)
}
