package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/segmentio/kafka-go"
)

type step struct {
	value []byte
	err   error
}

// stepReader plays back steps and cancels the consumer when it runs out.
type stepReader struct {
	steps  []step
	cancel context.CancelFunc
}

func (r *stepReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.steps) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	next := r.steps[0]
	r.steps = r.steps[1:]
	if next.err != nil {
		return kafka.Message{}, next.err
	}
	return kafka.Message{Value: next.value}, nil
}

func TestConsumeDeliversInOrderAndSurvivesReadErrors(t *testing.T) {
	readRetryDelay = time.Millisecond
	t.Cleanup(func() { readRetryDelay = time.Second })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stepReader{
		steps: []step{
			{value: []byte("a")},
			{err: errors.New("broker unavailable")},
			{value: []byte("b")},
		},
		cancel: cancel,
	}

	var got []string
	Consume(ctx, reader, logger.NewNop(), func(_ context.Context, value []byte) {
		got = append(got, string(value))
	})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestConsumeStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &stepReader{steps: []step{{value: []byte("late")}}, cancel: cancel}
	called := false
	Consume(ctx, reader, logger.NewNop(), func(context.Context, []byte) { called = true })

	if called {
		t.Fatalf("no message should be handled after cancellation")
	}
}
