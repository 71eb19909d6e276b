// Package ingest consumes externally seeded orders from Kafka and stores them.
package ingest

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/segmentio/kafka-go"

	"demo/ordertags/internal/model"
	"demo/ordertags/internal/validate"
)

// Reader is the part of *kafka.Reader the consumer uses.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Sink stores a decoded order.
type Sink interface {
	IngestOrder(ctx context.Context, o model.Order) (int64, error)
}

type Consumer struct {
	reader  Reader
	sink    Sink
	Backoff time.Duration
}

func NewConsumer(r Reader, s Sink) *Consumer {
	return &Consumer{reader: r, sink: s, Backoff: 500 * time.Millisecond}
}

// Run fetches messages until ctx is canceled. Messages that cannot be decoded or
// fail validation are committed and skipped. A message whose insert fails is
// left uncommitted so it is read again after a rebalance or restart.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			log.Printf("kafka fetch: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.Backoff):
			}
			continue
		}
		c.handle(ctx, m)
	}
}

func (c *Consumer) handle(ctx context.Context, m kafka.Message) {
	o, err := decode(m.Value)
	if err != nil {
		log.Printf("invalid message at offset %d: %v", m.Offset, err)
		_ = c.reader.CommitMessages(context.Background(), m)
		return
	}

	id, err := c.sink.IngestOrder(ctx, o)
	if err != nil {
		// не коммитим, чтобы можно было перечитать позже
		log.Printf("db insert failed (offset=%d): %v", m.Offset, err)
		return
	}
	log.Printf("ingested order id=%d code=%s offset=%d", id, o.Code, m.Offset)

	if err := c.reader.CommitMessages(ctx, m); err != nil {
		log.Printf("commit failed: %v", err)
	}
}

func decode(b []byte) (model.Order, error) {
	var msg model.OrderMessage
	if err := json.Unmarshal(b, &msg); err != nil {
		return model.Order{}, err
	}
	o, err := msg.Order()
	if err != nil {
		return model.Order{}, err
	}
	if err := validate.ValidateOrder(o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}
