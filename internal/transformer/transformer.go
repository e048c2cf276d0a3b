// Package transformer assembles a complete full record from an upsert delta:
// the mapped external data plus the parsed delta_at in internal data.
package transformer

import (
	"fmt"
	"strconv"
	"time"

	"psc-delta-consumer/internal/delta"
	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/mapper"
	"psc-delta-consumer/internal/psc"
)

const deltaAtLen = 20 // yyyyMMddHHmmssSSSSSS

// Transformer maps upsert deltas to full records.
type Transformer struct {
	mapper *mapper.Mapper
}

func New(m *mapper.Mapper) *Transformer {
	return &Transformer{mapper: m}
}

// Transform maps the first (and only) record of the delta and attaches the
// parsed delta_at. An empty record list or a malformed delta_at is
// non-retryable.
func (t *Transformer) Transform(d delta.PscDelta) (psc.FullRecord, error) {
	if len(d.Pscs) == 0 {
		return psc.FullRecord{}, errs.NewNonRetryable("No PSC records in delta", nil)
	}

	external, err := t.mapper.Map(d.Pscs[0])
	if err != nil {
		return psc.FullRecord{}, err
	}

	deltaAt, err := parseDeltaAt(d.DeltaAt)
	if err != nil {
		return psc.FullRecord{}, err
	}

	return psc.FullRecord{
		ExternalData: external,
		InternalData: &psc.InternalData{DeltaAt: deltaAt},
	}, nil
}

// parseDeltaAt parses the 20-character UTC timestamp carried on every delta:
// a second-resolution datetime followed by six microsecond digits. Every byte
// of the microsecond suffix must be a digit; strconv alone would let a signed
// value through and silently shift the timestamp.
func parseDeltaAt(raw string) (time.Time, error) {
	if len(raw) != deltaAtLen {
		return time.Time{}, deltaAtErr(raw)
	}
	base, err := time.Parse("20060102150405", raw[:14])
	if err != nil {
		return time.Time{}, deltaAtErr(raw)
	}
	for _, c := range raw[14:] {
		if c < '0' || c > '9' {
			return time.Time{}, deltaAtErr(raw)
		}
	}
	micros, err := strconv.Atoi(raw[14:])
	if err != nil {
		return time.Time{}, deltaAtErr(raw)
	}
	return base.Add(time.Duration(micros) * time.Microsecond), nil
}

func deltaAtErr(raw string) error {
	return errs.NewNonRetryable(fmt.Sprintf("Failed to parse delta_at: [%s]", raw), nil)
}
