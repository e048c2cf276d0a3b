// Package processor routes decoded change-event envelopes: upsert payloads
// through the transformer to a full-record PUT, delete payloads to a
// full-record DELETE.
package processor

import (
	"context"
	"encoding/json"
	"log/slog"

	"psc-delta-consumer/internal/delta"
	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/mapper"
	"psc-delta-consumer/internal/psc"
	"psc-delta-consumer/internal/requestcontext"
	"psc-delta-consumer/internal/transformer"
)

// Envelope is the change-event wrapper carried on the topic. Data holds the
// serialised delta payload; IsDelete selects which payload shape it is.
type Envelope struct {
	Data      string `json:"data"`
	ContextID string `json:"context_id"`
	Attempt   int    `json:"attempt"`
	IsDelete  bool   `json:"is_delete"`
}

// APIClient is the downstream data-API surface the processor needs.
type APIClient interface {
	PutPscFullRecord(ctx context.Context, companyNumber, notificationID string, record psc.FullRecord) error
	DeletePscFullRecord(ctx context.Context, req psc.DeleteRequest) error
}

// Processor executes one envelope end to end.
type Processor struct {
	logger      *slog.Logger
	transformer *transformer.Transformer
	api         APIClient
}

func New(logger *slog.Logger, t *transformer.Transformer, api APIClient) *Processor {
	return &Processor{logger: logger, transformer: t, api: api}
}

// Process dispatches an envelope by its delete flag. Retryable errors come
// back as errs.RetryableError; everything else is terminal for the message.
func (p *Processor) Process(ctx context.Context, env Envelope) error {
	ctx = requestcontext.WithContextID(ctx, env.ContextID)
	ctx = requestcontext.WithAttempt(ctx, env.Attempt)
	if env.IsDelete {
		return p.processDelete(ctx, env)
	}
	return p.processDelta(ctx, env)
}

func (p *Processor) processDelta(ctx context.Context, env Envelope) error {
	var d delta.PscDelta
	if err := json.Unmarshal([]byte(env.Data), &d); err != nil {
		p.logger.ErrorContext(ctx, "failed to extract psc delta",
			slog.String("context_id", env.ContextID), slog.Any("error", err))
		return errs.NewNonRetryable("Error when extracting psc delta", err)
	}

	record, err := p.transformer.Transform(d)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to transform psc delta",
			slog.String("context_id", env.ContextID), slog.Any("error", err))
		return errs.NewNonRetryable("Error when transforming into api object", err)
	}
	p.logger.InfoContext(ctx, "transformed psc delta",
		slog.String("context_id", env.ContextID),
		slog.String("company_number", record.ExternalData.CompanyNumber),
		slog.String("notification_id", record.ExternalData.NotificationID))

	return p.api.PutPscFullRecord(ctx,
		record.ExternalData.CompanyNumber, record.ExternalData.NotificationID, record)
}

func (p *Processor) processDelete(ctx context.Context, env Envelope) error {
	var d delta.PscDeleteDelta
	if err := json.Unmarshal([]byte(env.Data), &d); err != nil {
		p.logger.ErrorContext(ctx, "failed to extract psc delete delta",
			slog.String("context_id", env.ContextID), slog.Any("error", err))
		return errs.NewNonRetryable("Error when extracting psc delete delta", err)
	}

	req, err := BuildDeleteRequest(env.ContextID, d)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build delete request",
			slog.String("context_id", env.ContextID), slog.Any("error", err))
		return err
	}
	p.logger.InfoContext(ctx, "performing full record delete",
		slog.String("context_id", env.ContextID),
		slog.String("company_number", req.CompanyNumber),
		slog.String("notification_id", req.NotificationID))

	return p.api.DeletePscFullRecord(ctx, req)
}

// BuildDeleteRequest derives the immutable DELETE parameters from a delete
// delta: the encoded notification id, the public kind slug and the raw,
// unparsed delta_at.
func BuildDeleteRequest(contextID string, d delta.PscDeleteDelta) (psc.DeleteRequest, error) {
	slug, err := mapper.DeleteKindSlug(d.Kind)
	if err != nil {
		return psc.DeleteRequest{}, err
	}
	return psc.DeleteRequest{
		ContextID:      contextID,
		NotificationID: mapper.Encode(d.InternalID),
		CompanyNumber:  d.CompanyNumber,
		DeltaAt:        d.DeltaAt,
		Kind:           slug,
	}, nil
}
