// Package gen produces fake orders and tags for seeding and publishes orders to Kafka.
package gen

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-json-experiment/json"
	"github.com/segmentio/kafka-go"

	"demo/ordertags/internal/model"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func FakeOrder() model.Order {
	now := time.Now().UTC()
	d := gofakeit.DateRange(now.AddDate(-1, 0, 0), now)
	return model.Order{
		Code:  strings.ToUpper(gofakeit.LetterN(3)) + "-" + gofakeit.DigitN(6),
		Date:  time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Email: gofakeit.Email(),
	}
}

func FakeTagValue() string {
	return strings.ToLower(gofakeit.Color())
}

// SendOrder publishes one order keyed by its code.
func SendOrder(ctx context.Context, w MessageWriter, o model.Order, source string) (int, error) {
	val, err := json.Marshal(model.NewOrderMessage(o))
	if err != nil {
		return 0, fmt.Errorf("marshal order: %w", err)
	}
	return SendRaw(ctx, w, o.Code, val, source)
}

// SendRaw publishes an already encoded order payload.
func SendRaw(ctx context.Context, w MessageWriter, key string, val []byte, source string) (int, error) {
	err := w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: val,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "source", Value: []byte(source)},
		},
	})
	if err != nil {
		return 0, err
	}
	log.Printf("produced key=%s src=%s", key, source)
	return 1, nil
}
