package processor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"psc-delta-consumer/internal/delta"
	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/mapper"
	"psc-delta-consumer/internal/psc"
	"psc-delta-consumer/internal/requestcontext"
	"psc-delta-consumer/internal/transformer"
)

type fakeAPIClient struct {
	putCompanyNumber  string
	putNotificationID string
	putRecord         psc.FullRecord
	putContextID      string
	putErr            error

	deleteReq psc.DeleteRequest
	deleteErr error

	putCalls    int
	deleteCalls int
}

func (f *fakeAPIClient) PutPscFullRecord(ctx context.Context, companyNumber, notificationID string, record psc.FullRecord) error {
	f.putCalls++
	f.putCompanyNumber = companyNumber
	f.putNotificationID = notificationID
	f.putRecord = record
	f.putContextID = requestcontext.ContextID(ctx)
	return f.putErr
}

func (f *fakeAPIClient) DeletePscFullRecord(_ context.Context, req psc.DeleteRequest) error {
	f.deleteCalls++
	f.deleteReq = req
	return f.deleteErr
}

type ProcessorSuite struct {
	suite.Suite
	api       *fakeAPIClient
	processor *Processor
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorSuite))
}

func (s *ProcessorSuite) SetupTest() {
	s.api = &fakeAPIClient{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tr := transformer.New(mapper.New(func() string { return "etag" }))
	s.processor = New(logger, tr, s.api)
}

func upsertEnvelope(s *ProcessorSuite, d delta.PscDelta) Envelope {
	data, err := json.Marshal(d)
	s.Require().NoError(err)
	return Envelope{Data: string(data), ContextID: "context-42"}
}

func (s *ProcessorSuite) TestProcessUpsert() {
	env := upsertEnvelope(s, delta.PscDelta{
		Pscs: []delta.Psc{{
			CompanyNumber: "00623672",
			InternalID:    "5",
			Kind:          delta.KindIndividual,
		}},
		DeltaAt: "20230724093435661593",
	})

	s.Require().NoError(s.processor.Process(context.Background(), env))
	s.Equal(1, s.api.putCalls)
	s.Zero(s.api.deleteCalls)
	s.Equal("00623672", s.api.putCompanyNumber)
	s.Equal("lXgouUAR16hSIwxdJSpbr_dhyT8", s.api.putNotificationID)
	s.Equal("context-42", s.api.putContextID, "context id travels on the request context")
	s.Require().NotNil(s.api.putRecord.InternalData)
}

func (s *ProcessorSuite) TestProcessUpsertErrors() {
	s.Run("malformed payload is fatal", func() {
		err := s.processor.Process(context.Background(), Envelope{Data: "{not json", ContextID: "c"})
		s.Require().Error(err)
		s.True(errs.IsNonRetryable(err))
		s.Contains(err.Error(), "Error when extracting psc delta")
	})

	s.Run("transform failure is fatal", func() {
		env := upsertEnvelope(s, delta.PscDelta{
			Pscs:    []delta.Psc{{InternalID: "5", Kind: "bogus"}},
			DeltaAt: "20230724093435661593",
		})
		err := s.processor.Process(context.Background(), env)
		s.Require().Error(err)
		s.True(errs.IsNonRetryable(err))
		s.Contains(err.Error(), "Error when transforming into api object")
	})

	s.Run("api errors pass through unchanged", func() {
		s.api.putErr = errs.NewRetryable("Call to API failed, status code: 503", nil)
		env := upsertEnvelope(s, delta.PscDelta{
			Pscs:    []delta.Psc{{CompanyNumber: "00623672", InternalID: "5", Kind: delta.KindIndividual}},
			DeltaAt: "20230724093435661593",
		})
		err := s.processor.Process(context.Background(), env)
		s.Require().Error(err)
		s.True(errs.IsRetryable(err))
		s.False(errs.IsNonRetryable(err))
	})
}

func (s *ProcessorSuite) TestProcessDelete() {
	data, err := json.Marshal(delta.PscDeleteDelta{
		InternalID:    "5",
		CompanyNumber: "00623672",
		Kind:          delta.DeleteKindIndividual,
		DeltaAt:       "20230724093435661593",
	})
	s.Require().NoError(err)

	env := Envelope{Data: string(data), ContextID: "context-42", IsDelete: true}
	s.Require().NoError(s.processor.Process(context.Background(), env))

	s.Equal(1, s.api.deleteCalls)
	s.Zero(s.api.putCalls)
	s.Equal(psc.DeleteRequest{
		ContextID:      "context-42",
		NotificationID: "lXgouUAR16hSIwxdJSpbr_dhyT8",
		CompanyNumber:  "00623672",
		DeltaAt:        "20230724093435661593",
		Kind:           "individual-person-with-significant-control",
	}, s.api.deleteReq)
}

func (s *ProcessorSuite) TestProcessDeleteErrors() {
	s.Run("malformed payload is fatal", func() {
		env := Envelope{Data: "{not json", ContextID: "c", IsDelete: true}
		err := s.processor.Process(context.Background(), env)
		s.Require().Error(err)
		s.True(errs.IsNonRetryable(err))
		s.Contains(err.Error(), "Error when extracting psc delete delta")
	})

	s.Run("unknown kind is fatal with the delete message", func() {
		data, err := json.Marshal(delta.PscDeleteDelta{
			InternalID:    "5",
			CompanyNumber: "00623672",
			Kind:          "bogus",
			DeltaAt:       "20230724093435661593",
		})
		s.Require().NoError(err)
		procErr := s.processor.Process(context.Background(), Envelope{Data: string(data), IsDelete: true})
		s.Require().Error(procErr)
		s.Equal("Invalid Kind type supplied in delete", procErr.Error())
		s.True(errs.IsNonRetryable(procErr))
	})

	s.Run("api errors pass through", func() {
		s.api.deleteErr = errors.New("network down")
		data, err := json.Marshal(delta.PscDeleteDelta{
			InternalID:    "5",
			CompanyNumber: "00623672",
			Kind:          delta.DeleteKindIndividual,
			DeltaAt:       "20230724093435661593",
		})
		s.Require().NoError(err)
		procErr := s.processor.Process(context.Background(), Envelope{Data: string(data), IsDelete: true})
		s.Require().Error(procErr)
		s.True(errs.IsRetryable(procErr))
	})
}

func TestBuildDeleteRequest(t *testing.T) {
	req, err := BuildDeleteRequest("ctx-1", delta.PscDeleteDelta{
		InternalID:    "1234567890",
		CompanyNumber: "OE123456",
		Kind:          delta.DeleteKindCorporateEntityBeneficialOwner,
		DeltaAt:       "20230724093435661593",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.NotificationID != "-iNwbn2C9bOTVidh5xPhfjK6Eb4" {
		t.Fatalf("unexpected notification id: %s", req.NotificationID)
	}
	if req.Kind != "corporate-entity-beneficial-owner" {
		t.Fatalf("unexpected kind: %s", req.Kind)
	}
	if req.DeltaAt != "20230724093435661593" {
		t.Fatalf("delta_at must travel unparsed, got %s", req.DeltaAt)
	}
}
