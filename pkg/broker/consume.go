package broker

import (
	"context"
	"time"

	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// readRetryDelay is the pause after a failed read.
var readRetryDelay = time.Second

// Consume hands every message value to handle until ctx is cancelled.
// handle owns decoding and error reporting for its message.
func Consume(ctx context.Context, reader MessageReader, log logger.ZapLogger, handle func(ctx context.Context, value []byte)) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("Failed to read kafka message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}
		handle(ctx, msg.Value)
	}
}
