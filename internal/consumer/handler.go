// Package consumer decodes change-event envelopes off the wire and hands
// them to the processor.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/platform/kafka"
	"psc-delta-consumer/internal/platform/metrics"
	"psc-delta-consumer/internal/processor"
)

// DeltaHandler implements kafka.Handler for the PSC delta topics.
type DeltaHandler struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	processor *processor.Processor
}

func NewDeltaHandler(logger *slog.Logger, m *metrics.Metrics, p *processor.Processor) *DeltaHandler {
	return &DeltaHandler{logger: logger, metrics: m, processor: p}
}

// Handle decodes the envelope and processes it. The attempt count from the
// record header wins over the envelope's own field, since the header is
// rewritten on every redelivery.
func (h *DeltaHandler) Handle(ctx context.Context, msg *kafka.Message) error {
	var env processor.Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		h.logger.Error("failed to decode change-event envelope",
			slog.String("topic", msg.Topic),
			slog.Any("error", err))
		return errs.NewNonRetryable("Error when extracting change-event envelope", err)
	}
	if msg.Attempt > env.Attempt {
		env.Attempt = msg.Attempt
	}

	if err := h.processor.Process(ctx, env); err != nil {
		return err
	}

	if env.IsDelete {
		h.metrics.DeletesProcessed.Inc()
	} else {
		h.metrics.DeltasProcessed.Inc()
	}
	return nil
}
