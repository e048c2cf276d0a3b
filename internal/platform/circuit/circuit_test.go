package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	b := New(3, 2)

	assert.False(t, b.RecordFailure())
	assert.False(t, b.RecordFailure())
	assert.False(t, b.IsOpen())
	assert.True(t, b.RecordFailure())
	assert.True(t, b.IsOpen())
}

func TestSuccessResetsFailureRun(t *testing.T) {
	b := New(3, 2)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()
	assert.False(t, b.IsOpen(), "the run restarted after a success")
	b.RecordFailure()
	assert.True(t, b.IsOpen())
}

func TestBreakerClosesAfterConsecutiveSuccesses(t *testing.T) {
	b := New(2, 2)
	b.RecordFailure()
	b.RecordFailure()
	assert.True(t, b.IsOpen())

	assert.False(t, b.RecordSuccess())
	assert.True(t, b.IsOpen())
	assert.True(t, b.RecordSuccess())
	assert.False(t, b.IsOpen())
}

func TestFailureWhileOpenResetsSuccessRun(t *testing.T) {
	b := New(2, 2)
	b.RecordFailure()
	b.RecordFailure()

	b.RecordSuccess()
	b.RecordFailure()
	b.RecordSuccess()
	assert.True(t, b.IsOpen(), "one success after a failure is not enough")
	b.RecordSuccess()
	assert.False(t, b.IsOpen())
}

func TestDefaultThresholds(t *testing.T) {
	b := New(0, -1)
	for i := 0; i < 4; i++ {
		assert.False(t, b.RecordFailure())
	}
	assert.True(t, b.RecordFailure(), "defaults to five failures")
}
