// Package kafka wires the change-event consumer: a franz-go consumer group
// over the main and retry topics, per-record commits, and the retry/error
// topology. Handlers raise errors; this layer classifies them and routes the
// record to the retry or error topic.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/platform/config"
	"psc-delta-consumer/internal/platform/metrics"
)

// attemptHeader carries the delivery attempt count across redeliveries.
const attemptHeader = "attempt"

// Message is one consumed record, decoupled from the client library.
type Message struct {
	Topic   string
	Key     []byte
	Value   []byte
	Attempt int
}

// Handler processes one message. A returned error is classified here: a
// non-retryable error dead-letters the record, anything else re-queues it
// until attempts run out.
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// Consumer runs the consume loop.
type Consumer struct {
	client  *kgo.Client
	admin   *kadm.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	handler Handler
	cfg     config.Kafka
}

// NewConsumer connects a consumer group subscribed to the main and retry
// topics. Commits are explicit and per record.
func NewConsumer(cfg config.Kafka, logger *slog.Logger, m *metrics.Metrics, handler Handler) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.GroupID),
		kgo.ConsumeTopics(cfg.Topic, cfg.RetryTopic()),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Consumer{
		client:  client,
		admin:   kadm.NewClient(client),
		logger:  logger,
		metrics: m,
		handler: handler,
		cfg:     cfg,
	}, nil
}

// Close tears down the underlying client.
func (c *Consumer) Close() {
	c.client.Close()
}

// CheckTopics verifies the main, retry and error topics exist before the
// consume loop starts, so a misconfigured deployment fails loudly.
func (c *Consumer) CheckTopics(ctx context.Context) error {
	required := []string{c.cfg.Topic, c.cfg.RetryTopic(), c.cfg.ErrorTopic()}
	details, err := c.admin.ListTopics(ctx, required...)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	for _, topic := range required {
		if !details.Has(topic) {
			return fmt.Errorf("required topic %q does not exist", topic)
		}
	}
	return nil
}

// Run polls until the context is cancelled. Each record is handled, routed on
// failure, and committed individually so a crash never skips work.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error("fetch error",
				slog.String("topic", topic),
				slog.Int("partition", int(partition)),
				slog.Any("error", err))
		})

		var commitErr error
		fetches.EachRecord(func(record *kgo.Record) {
			if commitErr != nil {
				return
			}
			c.consume(ctx, record)
			if err := c.client.CommitRecords(ctx, record); err != nil {
				commitErr = err
			}
		})
		if commitErr != nil && ctx.Err() == nil {
			c.logger.Error("commit failed", slog.Any("error", commitErr))
		}
	}
}

func (c *Consumer) consume(ctx context.Context, record *kgo.Record) {
	msg := &Message{
		Topic:   record.Topic,
		Key:     record.Key,
		Value:   record.Value,
		Attempt: attemptFrom(record),
	}

	// Redeliveries get a flat pause; the topic itself provides no delay.
	if record.Topic == c.cfg.RetryTopic() {
		select {
		case <-time.After(c.cfg.BackoffDelay):
		case <-ctx.Done():
			return
		}
	}

	err := c.handler.Handle(ctx, msg)
	if err == nil {
		return
	}

	if errs.IsNonRetryable(err) {
		c.metrics.NonRetryableErrors.Inc()
		c.logger.Error("non-retryable failure, dead-lettering record",
			slog.String("topic", record.Topic),
			slog.Any("error", err))
		c.forward(ctx, record, c.cfg.ErrorTopic(), msg.Attempt)
		return
	}

	c.metrics.RetryableErrors.Inc()
	nextAttempt := msg.Attempt + 1
	if nextAttempt >= c.cfg.MaxAttempts {
		c.logger.Error("retry attempts exhausted, dead-lettering record",
			slog.String("topic", record.Topic),
			slog.Int("attempts", nextAttempt),
			slog.Any("error", err))
		c.forward(ctx, record, c.cfg.ErrorTopic(), msg.Attempt)
		return
	}
	c.logger.Warn("retryable failure, re-queueing record",
		slog.String("topic", record.Topic),
		slog.Int("attempt", nextAttempt),
		slog.Any("error", err))
	c.forward(ctx, record, c.cfg.RetryTopic(), nextAttempt)
}

// forward republishes the record's payload to the given topic with the
// attempt header set. A publish failure is logged and the record is still
// committed: losing one delta to a broken broker beats wedging the partition.
func (c *Consumer) forward(ctx context.Context, record *kgo.Record, topic string, attempt int) {
	out := &kgo.Record{
		Topic: topic,
		Key:   record.Key,
		Value: record.Value,
		Headers: []kgo.RecordHeader{
			{Key: attemptHeader, Value: []byte(strconv.Itoa(attempt))},
		},
	}
	if err := c.client.ProduceSync(ctx, out).FirstErr(); err != nil {
		c.logger.Error("failed to forward record",
			slog.String("topic", topic),
			slog.Any("error", err))
		return
	}
	if topic == c.cfg.ErrorTopic() {
		c.metrics.MessagesErrored.Inc()
	} else {
		c.metrics.MessagesRetried.Inc()
	}
}

func attemptFrom(record *kgo.Record) int {
	for _, h := range record.Headers {
		if h.Key == attemptHeader {
			if n, err := strconv.Atoi(string(h.Value)); err == nil {
				return n
			}
		}
	}
	return 0
}
