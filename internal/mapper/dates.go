package mapper

import (
	"fmt"
	"time"

	"psc-delta-consumer/internal/errs"
	"psc-delta-consumer/internal/psc"
)

// Delta dates arrive as yyyyMMdd. Parsing appends start-of-day seconds and
// parses the full datetime in UTC, so the resulting calendar date carries no
// time-zone ambiguity.
const (
	timeStartOfDay = "000000"
	datetimeLayout = "20060102150405"
)

// ParseDate parses a yyyyMMdd delta date string. Failures are non-retryable
// and report the suffixed string that was actually parsed.
func ParseDate(raw string) (psc.Date, error) {
	suffixed := raw + timeStartOfDay
	t, err := time.Parse(datetimeLayout, suffixed)
	if err != nil {
		return psc.Date{}, errs.NewNonRetryable(
			fmt.Sprintf("Failed to parse date/time: [%s]", suffixed), nil)
	}
	return psc.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}
