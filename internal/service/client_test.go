package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/platform/circuit"
	"psc-delta-consumer/internal/platform/metrics"
	"psc-delta-consumer/internal/psc"
	"psc-delta-consumer/internal/requestcontext"
)

type recordedRequest struct {
	method string
	path   string
	header http.Header
	body   []byte
}

type ClientSuite struct {
	suite.Suite
	server   *httptest.Server
	client   *Client
	breaker  *circuit.Breaker
	status   int
	requests []recordedRequest
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.status = http.StatusOK
	s.requests = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.requests = append(s.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			header: r.Header.Clone(),
			body:   body,
		})
		w.WriteHeader(s.status)
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	s.breaker = circuit.New(3, 2)
	s.client = New(logger, m, s.breaker, s.server.URL, "test-api-key", s.server.Client())
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) putRecord(ctx context.Context) error {
	return s.client.PutPscFullRecord(ctx, "00623672", "notif-1", psc.FullRecord{
		ExternalData: psc.ExternalData{CompanyNumber: "00623672", NotificationID: "notif-1"},
	})
}

func (s *ClientSuite) TestPut() {
	ctx := requestcontext.WithContextID(context.Background(), "ctx-99")
	s.Require().NoError(s.putRecord(ctx))

	s.Require().Len(s.requests, 1)
	req := s.requests[0]
	s.Equal(http.MethodPut, req.method)
	s.Equal("/company/00623672/persons-with-significant-control/notif-1/full_record", req.path)
	s.Equal("test-api-key", req.header.Get("Authorization"))
	s.Equal("ctx-99", req.header.Get("X-Request-Id"))
	s.Equal("application/json", req.header.Get("Content-Type"))

	var sent psc.FullRecord
	s.Require().NoError(json.Unmarshal(req.body, &sent))
	s.Equal("00623672", sent.ExternalData.CompanyNumber)
}

func (s *ClientSuite) TestDelete() {
	err := s.client.DeletePscFullRecord(context.Background(), psc.DeleteRequest{
		ContextID:      "ctx-7",
		NotificationID: "notif-1",
		CompanyNumber:  "00623672",
		DeltaAt:        "20230724093435661593",
		Kind:           "individual-person-with-significant-control",
	})
	s.Require().NoError(err)

	s.Require().Len(s.requests, 1)
	req := s.requests[0]
	s.Equal(http.MethodDelete, req.method)
	s.Equal("/company/00623672/persons-with-significant-control/notif-1/full_record", req.path)
	s.Equal("20230724093435661593", req.header.Get("X-DELTA-AT"))
	s.Equal("individual-person-with-significant-control", req.header.Get("X-KIND"))
	s.Equal("test-api-key", req.header.Get("Authorization"))
}

func (s *ClientSuite) TestResponseClassification() {
	s.Run("bad request is non-retryable", func() {
		s.status = http.StatusBadRequest
		err := s.putRecord(context.Background())
		s.Require().Error(err)
		s.True(errs.IsNonRetryable(err))
		s.Equal("Call to API failed, status code: 400", err.Error())
	})

	s.Run("conflict is non-retryable", func() {
		s.status = http.StatusConflict
		err := s.putRecord(context.Background())
		s.Require().Error(err)
		s.True(errs.IsNonRetryable(err))
	})

	s.Run("not found is retryable", func() {
		s.status = http.StatusNotFound
		err := s.putRecord(context.Background())
		s.Require().Error(err)
		s.True(errs.IsRetryable(err))
		s.False(errs.IsNonRetryable(err))
	})

	s.Run("server error is retryable", func() {
		s.status = http.StatusServiceUnavailable
		err := s.putRecord(context.Background())
		s.Require().Error(err)
		s.True(errs.IsRetryable(err))
		s.Equal("Call to API failed, status code: 503", err.Error())
	})
}

func (s *ClientSuite) TestInvalidURIIsRetryable() {
	err := s.client.PutPscFullRecord(context.Background(), "", "notif-1", psc.FullRecord{})
	s.Require().Error(err)
	s.True(errs.IsRetryable(err))
	s.Equal("Invalid URI", err.Error())
	s.Empty(s.requests, "no request should be sent")
}

func (s *ClientSuite) TestCircuitBreaker() {
	s.status = http.StatusInternalServerError
	for i := 0; i < 3; i++ {
		err := s.putRecord(context.Background())
		s.Require().Error(err)
	}
	s.True(s.breaker.IsOpen(), "three consecutive retryable failures open the circuit")

	sent := len(s.requests)
	err := s.putRecord(context.Background())
	s.Require().Error(err)
	s.True(errs.IsRetryable(err))
	s.Equal("data api circuit open", err.Error())
	s.Len(s.requests, sent, "open circuit fails fast without calling the api")
}

func (s *ClientSuite) TestLogsContextIDAndAttempt() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	m := metrics.New(prometheus.NewRegistry())
	client := New(logger, m, circuit.New(3, 2), s.server.URL, "test-api-key", s.server.Client())

	ctx := requestcontext.WithAttempt(
		requestcontext.WithContextID(context.Background(), "ctx-42"), 2)
	err := client.PutPscFullRecord(ctx, "00623672", "notif-1", psc.FullRecord{})
	s.Require().NoError(err)

	var line struct {
		Msg       string `json:"msg"`
		ContextID string `json:"context_id"`
		Attempt   int    `json:"attempt"`
	}
	s.Require().NoError(json.Unmarshal(logs.Bytes(), &line))
	s.Equal("PUT full record", line.Msg)
	s.Equal("ctx-42", line.ContextID)
	s.Equal(2, line.Attempt)
}

func (s *ClientSuite) TestRejectionsDoNotTripTheBreaker() {
	s.status = http.StatusBadRequest
	for i := 0; i < 5; i++ {
		err := s.putRecord(context.Background())
		s.Require().Error(err)
	}
	s.False(s.breaker.IsOpen(), "a responding api keeps the circuit closed")
}
