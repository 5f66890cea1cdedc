package facades

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

// MessageWriter is the subset of *kafka.Writer used for publishing.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisherConfig tunes the asynchronous publisher.
type EventPublisherConfig struct {
	PoolSize         int           // Concurrent publishing goroutines
	WriteTimeout     time.Duration // Upper bound for one broker write
	BreakerFailures  uint32        // Consecutive failures that open the breaker
	BreakerOpenDelay time.Duration // Time the breaker stays open before probing
}

// DefaultEventPublisherConfig returns the settings used when none are configured.
func DefaultEventPublisherConfig() EventPublisherConfig {
	return EventPublisherConfig{
		PoolSize:         8,
		WriteTimeout:     5 * time.Second,
		BreakerFailures:  5,
		BreakerOpenDelay: 30 * time.Second,
	}
}

// EventPublisher hands transaction events to Kafka off the request path.
// Writes go through a circuit breaker so a dead broker costs nothing per request.
type EventPublisher struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker
	pool    *ants.Pool
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewKafkaWriter creates a writer for topic that hashes messages by key.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// NewEventPublisher creates a new EventPublisher over writer.
func NewEventPublisher(writer MessageWriter, cfg EventPublisherConfig) (*EventPublisher, error) {
	if writer == nil {
		return nil, errors.New("event publisher: writer is nil")
	}
	if cfg.PoolSize < 1 {
		return nil, fmt.Errorf("event publisher: pool size must be at least 1, got %d", cfg.PoolSize)
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("event publisher: %w", err)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 1
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka-events",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &EventPublisher{
		writer:  writer,
		breaker: breaker,
		pool:    pool,
		timeout: cfg.WriteTimeout,
	}, nil
}

// WriteMessages schedules msgs for publishing and returns at once. The write
// outlives ctx cancellation but not the configured timeout.
func (p *EventPublisher) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if p.breaker.State() == gobreaker.StateOpen {
		logger.Log.Warnw("circuit breaker open, dropping events", "count", len(msgs))
		return gobreaker.ErrOpenState
	}

	detached := context.WithoutCancel(ctx)
	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		p.write(detached, msgs)
	})
	if err != nil {
		p.wg.Done()
		logger.Log.Errorw("failed to schedule events", "count", len(msgs), "error", err)
		return err
	}
	return nil
}

func (p *EventPublisher) write(ctx context.Context, msgs []kafka.Message) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.writer.WriteMessages(ctx, msgs...)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		logger.Log.Warnw("circuit breaker rejected events", "count", len(msgs), "error", err)
	case err != nil:
		logger.Log.Errorw("failed to publish events to kafka", "count", len(msgs), "error", err)
	default:
		logger.Log.Debugw("events published to kafka", "count", len(msgs))
	}
}

// Close waits for scheduled writes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	p.wg.Wait()
	p.pool.Release()
	return p.writer.Close()
}
