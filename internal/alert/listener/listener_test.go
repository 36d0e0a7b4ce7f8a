package listener

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fekuna/brewops-lot-service/internal/alert/dto"
	alertRepo "github.com/fekuna/brewops-lot-service/internal/alert/repository"
	"github.com/fekuna/brewops-lot-service/internal/alert/usecase"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/migrations"
	"github.com/fekuna/brewops-lot-service/pkg/database"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// scriptedReader replays messages and cancels the listener once drained.
type scriptedReader struct {
	messages [][]byte
	cancel   context.CancelFunc
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	next := r.messages[0]
	r.messages = r.messages[1:]
	return kafka.Message{Value: next}, nil
}

type recordingUseCase struct {
	created []dto.CreateAlertInput
}

func (u *recordingUseCase) CreateAlert(_ context.Context, input *dto.CreateAlertInput) (*model.LotAlert, error) {
	u.created = append(u.created, *input)
	return &model.LotAlert{ID: "a1", LotNumber: input.LotNumber}, nil
}

func (u *recordingUseCase) GetAlert(context.Context, string, string) (*model.LotAlert, error) {
	return nil, nil
}

func (u *recordingUseCase) ListByLot(context.Context, string, string) ([]model.LotAlert, error) {
	return nil, nil
}

func (u *recordingUseCase) Acknowledge(context.Context, *dto.AcknowledgeInput) (*model.LotAlert, error) {
	return nil, nil
}

func (u *recordingUseCase) Resolve(context.Context, *dto.ResolveInput) (*model.LotAlert, error) {
	return nil, nil
}

func (u *recordingUseCase) Archive(context.Context, *dto.ArchiveInput) (*model.LotAlert, error) {
	return nil, nil
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestAlertListenerIngestsIssuedAlerts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	issued := AlertEvent{
		EventID:   "evt-1",
		EventType: EventLotAlertIssued,
		Payload: AlertEventPayload{
			BreweryID:       "brew-1",
			LotNumber:       "L7",
			Severity:        "recall",
			Title:           "Supplier recall",
			AffectedBatches: []string{"B-1"},
			Documents:       []EventDocument{{Name: "notice.pdf", StorageKey: "recalls/notice.pdf"}},
		},
	}
	other := AlertEvent{EventID: "evt-2", EventType: "SomethingElse"}

	reader := &scriptedReader{
		messages: [][]byte{mustJSON(t, issued), []byte("{not json"), mustJSON(t, other)},
		cancel:   cancel,
	}
	uc := &recordingUseCase{}
	NewAlertListener(reader, uc, logger.NewNop()).Start(ctx)

	if len(uc.created) != 1 {
		t.Fatalf("expected one alert created, got %d", len(uc.created))
	}
	got := uc.created[0]
	if got.BreweryID != "brew-1" || got.EventID != "evt-1" || got.LotNumber != "L7" || got.Severity != "recall" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if len(got.Documents) != 1 || got.Documents[0].StorageKey != "recalls/notice.pdf" {
		t.Fatalf("documents not carried over: %+v", got.Documents)
	}
}

func TestAlertListenerRedeliveryCreatesOneAlert(t *testing.T) {
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "intake.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if err := migrations.Up(context.Background(), db, migrations.DialectFor(db.DriverName())); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := alertRepo.NewSQLRepository(db)
	uc := usecase.NewAlertUseCase(repo, nil, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	issued := mustJSON(t, AlertEvent{
		EventID:   "evt-77",
		EventType: EventLotAlertIssued,
		Payload: AlertEventPayload{
			BreweryID: "brew-1",
			LotNumber: "L9",
			Severity:  "critical",
			Title:     "Glass fragments reported",
		},
	})
	reader := &scriptedReader{messages: [][]byte{issued, issued}, cancel: cancel}
	NewAlertListener(reader, uc, logger.NewNop()).Start(ctx)

	alerts, err := repo.ListByLot(context.Background(), "brew-1", "L9")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected one alert after redelivery, got %d", len(alerts))
	}
}
