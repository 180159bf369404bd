package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"greatglobal/internal/platform/config"
	"greatglobal/internal/platform/eventsink"
	"greatglobal/internal/platform/postgres"
	audit "greatglobal/pkg/platform/audit"
	auditmemory "greatglobal/pkg/platform/audit/store/memory"
	auditpostgres "greatglobal/pkg/platform/audit/store/postgres"
	auditsqlite "greatglobal/pkg/platform/audit/store/sqlite"
	"greatglobal/pkg/platform/audit/worker"
	"greatglobal/pkg/platform/circuit"
)

// journalStore is what every journal backend offers: the append-only store
// plus outbox bookkeeping for the relay.
type journalStore interface {
	audit.Store
	audit.Outbox
}

type journal struct {
	store  journalStore
	relay  *worker.Relay
	closer []func()
}

func (j *journal) Close() {
	for i := len(j.closer) - 1; i >= 0; i-- {
		j.closer[i]()
	}
}

// openJournal selects the journal backend and the sink its relay forwards to.
func openJournal(ctx context.Context, cfg config.Config, log *slog.Logger, metrics *worker.Metrics) (*journal, error) {
	j := &journal{}

	switch cfg.Journal.Driver {
	case "postgres":
		pool, err := postgres.OpenPool(ctx, cfg.Ledger.DatabaseURL)
		if err != nil {
			return nil, err
		}
		j.closer = append(j.closer, pool.Close)
		j.store = auditpostgres.New(pool)
	case "sqlite":
		store, err := auditsqlite.Open(cfg.Journal.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite journal: %w", err)
		}
		j.closer = append(j.closer, func() { _ = store.Close() })
		j.store = store
	default:
		j.store = auditmemory.NewInMemoryStore()
	}

	sink, err := openSink(ctx, cfg.Sink, log)
	if err != nil {
		j.Close()
		return nil, err
	}
	if c, ok := sink.(interface{ Close() }); ok {
		j.closer = append(j.closer, c.Close)
	}

	j.relay = worker.NewRelay(j.store, sink, log,
		worker.WithInterval(cfg.Journal.RelayEvery),
		worker.WithBreaker(circuit.New("event-sink:"+sinkKind(cfg.Sink))),
		worker.WithRelayMetrics(metrics),
	)
	return j, nil
}

func openSink(ctx context.Context, cfg config.Sink, log *slog.Logger) (worker.Sink, error) {
	switch sinkKind(cfg) {
	case "kafka":
		return eventsink.NewKafkaSink(ctx, eventsink.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		}, log)
	case "amqp":
		return eventsink.NewAMQPSink(cfg.AMQPURL, cfg.AMQPExchange, log)
	default:
		return eventsink.NewLogSink(log), nil
	}
}

func sinkKind(cfg config.Sink) string {
	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))
	if kind == "" {
		return "none"
	}
	return kind
}
