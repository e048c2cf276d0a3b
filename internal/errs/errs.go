// Package errs defines the two-tier error taxonomy consumed by the retry-topic
// infrastructure.
//
// The core transformation raises these; only the Kafka layer classifies them:
// - NonRetryableError: the message can never succeed (malformed payload,
//   unparseable date, unrecognised kind, 400/409 from the data API). It is
//   routed straight to the error topic.
// - RetryableError: a transient downstream failure. The message is republished
//   to the retry topic until the configured attempt count is exhausted.
//
// Anything that is not a NonRetryableError is treated as retryable.
package errs

import "errors"

// RetryableError marks a failure the retry-topic infrastructure should
// redeliver.
type RetryableError struct {
	msg string
	err error
}

// NewRetryable wraps err as a retryable failure. err may be nil.
func NewRetryable(msg string, err error) error {
	return &RetryableError{msg: msg, err: err}
}

func (e *RetryableError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *RetryableError) Unwrap() error { return e.err }

// NonRetryableError marks a failure that must never be redelivered.
type NonRetryableError struct {
	msg string
	err error
}

// NewNonRetryable wraps err as a terminal failure. err may be nil.
func NewNonRetryable(msg string, err error) error {
	return &NonRetryableError{msg: msg, err: err}
}

func (e *NonRetryableError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *NonRetryableError) Unwrap() error { return e.err }

// IsNonRetryable reports whether err is terminal.
func IsNonRetryable(err error) bool {
	var n *NonRetryableError
	return errors.As(err, &n)
}

// IsRetryable reports whether err should be redelivered. Unclassified errors
// are retryable so that infrastructure blips are not dead-lettered.
func IsRetryable(err error) bool {
	return err != nil && !IsNonRetryable(err)
}
