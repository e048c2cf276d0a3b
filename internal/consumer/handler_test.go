package consumer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"psc-delta-consumer/internal/delta"
	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/mapper"
	"psc-delta-consumer/internal/platform/kafka"
	"psc-delta-consumer/internal/platform/metrics"
	"psc-delta-consumer/internal/processor"
	"psc-delta-consumer/internal/psc"
	"psc-delta-consumer/internal/requestcontext"
	"psc-delta-consumer/internal/transformer"
)

type captureAPIClient struct {
	putAttempt int
	putErr     error
	deletes    int
}

func (c *captureAPIClient) PutPscFullRecord(ctx context.Context, _, _ string, _ psc.FullRecord) error {
	c.putAttempt = requestcontext.Attempt(ctx)
	return c.putErr
}

func (c *captureAPIClient) DeletePscFullRecord(context.Context, psc.DeleteRequest) error {
	c.deletes++
	return nil
}

type DeltaHandlerSuite struct {
	suite.Suite
	api     *captureAPIClient
	handler *DeltaHandler
}

func TestDeltaHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeltaHandlerSuite))
}

func (s *DeltaHandlerSuite) SetupTest() {
	s.api = &captureAPIClient{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	proc := processor.New(logger, transformer.New(mapper.New(nil)), s.api)
	s.handler = NewDeltaHandler(logger, m, proc)
}

func (s *DeltaHandlerSuite) envelope(isDelete bool, attempt int) []byte {
	var payload []byte
	var err error
	if isDelete {
		payload, err = json.Marshal(delta.PscDeleteDelta{
			InternalID:    "5",
			CompanyNumber: "00623672",
			Kind:          delta.DeleteKindIndividual,
			DeltaAt:       "20230724093435661593",
		})
	} else {
		payload, err = json.Marshal(delta.PscDelta{
			Pscs:    []delta.Psc{{CompanyNumber: "00623672", InternalID: "5", Kind: delta.KindIndividual}},
			DeltaAt: "20230724093435661593",
		})
	}
	s.Require().NoError(err)

	env, err := json.Marshal(processor.Envelope{
		Data:      string(payload),
		ContextID: "ctx-1",
		Attempt:   attempt,
		IsDelete:  isDelete,
	})
	s.Require().NoError(err)
	return env
}

func (s *DeltaHandlerSuite) TestHandleUpsert() {
	msg := &kafka.Message{Topic: "psc-delta", Value: s.envelope(false, 0)}
	s.Require().NoError(s.handler.Handle(context.Background(), msg))
}

func (s *DeltaHandlerSuite) TestHandleDelete() {
	msg := &kafka.Message{Topic: "psc-delta", Value: s.envelope(true, 0)}
	s.Require().NoError(s.handler.Handle(context.Background(), msg))
	s.Equal(1, s.api.deletes)
}

func (s *DeltaHandlerSuite) TestHeaderAttemptWins() {
	msg := &kafka.Message{Topic: "psc-delta-retry", Value: s.envelope(false, 1), Attempt: 3}
	s.Require().NoError(s.handler.Handle(context.Background(), msg))
	s.Equal(3, s.api.putAttempt, "header attempt overrides the stale envelope field")
}

func (s *DeltaHandlerSuite) TestUndecodableEnvelopeIsFatal() {
	msg := &kafka.Message{Topic: "psc-delta", Value: []byte("{nope")}
	err := s.handler.Handle(context.Background(), msg)
	s.Require().Error(err)
	s.True(errs.IsNonRetryable(err))
}

func (s *DeltaHandlerSuite) TestProcessorErrorsPropagate() {
	s.api.putErr = errs.NewRetryable("Call to API failed, status code: 502", nil)
	msg := &kafka.Message{Topic: "psc-delta", Value: s.envelope(false, 0)}
	err := s.handler.Handle(context.Background(), msg)
	s.Require().Error(err)
	s.True(errs.IsRetryable(err))
}
