package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventHandler receives each decoded ledger event. An error stops the
// consumer and leaves the message uncommitted.
type EventHandler func(ctx context.Context, event domain.LedgerEvent) error

type Consumer struct {
	reader messageReader
	log    *slog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *slog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// ConsumeEvents reads until ctx is done or handler fails. Messages that do
// not decode are logged and committed so they never block the partition.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		event, err := DecodeLedgerEvent(msg)
		if err != nil {
			c.log.WarnContext(ctx, "skipping ledger event", "partition", msg.Partition, "offset", msg.Offset, "error", err)
		} else if err := handler(ctx, event); err != nil {
			return fmt.Errorf("handle event %s: %w", event.ID, err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

func DecodeLedgerEvent(msg kafka.Message) (domain.LedgerEvent, error) {
	var event domain.LedgerEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return domain.LedgerEvent{}, fmt.Errorf("decode ledger event: %w", err)
	}
	if event.ID == "" {
		return domain.LedgerEvent{}, fmt.Errorf("decode ledger event: missing id")
	}
	return event, nil
}
