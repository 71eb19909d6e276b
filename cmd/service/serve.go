package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"demo/ordertags/internal/api"
	"demo/ordertags/internal/ingest"
	"demo/ordertags/internal/service"
	"demo/ordertags/internal/store"
)

type ServeCmd struct {
	Addr         string   `env:"HTTP_ADDR" default:":8082" help:"Address to listen on."`
	AutoMigrate  bool     `name:"auto-migrate" env:"DB_MIGRATE" default:"true" help:"Apply migrations before serving."`
	KafkaBrokers []string `name:"kafka-brokers" env:"KAFKA_BROKERS" help:"Kafka brokers for order ingest; ingest is off when empty."`
	KafkaTopic   string   `name:"kafka-topic" env:"KAFKA_TOPIC" default:"orders" help:"Topic carrying seeded orders."`
	KafkaGroup   string   `name:"kafka-group" env:"KAFKA_GROUP" default:"orders-consumers" help:"Consumer group id."`
}

func (s *ServeCmd) Run(cctx *Context) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if s.AutoMigrate {
		if err := store.Migrate(cctx.DSN); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}

	// DB pool
	pool, err := pgxpool.New(ctx, cctx.DSN)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	svc := service.New(store.New(pool))
	srv := &http.Server{
		Addr:         s.Addr,
		Handler:      api.New(svc).Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("http: listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if brokers := splitCSV(s.KafkaBrokers); len(brokers) > 0 {
		log.Printf("kafka ingest: brokers=%v topic=%s group=%s", brokers, s.KafkaTopic, s.KafkaGroup)
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:     brokers,
			Topic:       s.KafkaTopic,
			GroupID:     s.KafkaGroup,
			MinBytes:    1e3,
			MaxBytes:    10e6,
			StartOffset: kafka.FirstOffset,
		})
		defer reader.Close()
		g.Go(func() error { return ingest.NewConsumer(reader, svc).Run(ctx) })
	} else {
		log.Printf("kafka ingest: disabled (KAFKA_BROKERS empty)")
	}

	err = g.Wait()
	log.Println("bye")
	return err
}

// splitCSV drops blank entries, so KAFKA_BROKERS="" disables ingest.
func splitCSV(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
