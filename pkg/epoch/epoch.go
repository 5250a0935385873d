// Package epoch maps timestamps onto the recurring 28-day reward periods
// used to bucket community activity.
package epoch

import (
	"strconv"
	"time"
)

// Calendar defines the fixed-length period grid. Periods are anchored by
// mapping ReferenceStart (a UTC date) to ReferenceNumber and extend in
// both directions in LengthDays steps.
type Calendar struct {
	LengthDays      int
	ReferenceNumber int
	ReferenceStart  time.Time
	MinNumber       int
}

// Default returns the production calendar: 28-day epochs with
// 2025-11-10 as the start of epoch 69.
func Default() Calendar {
	return Calendar{
		LengthDays:      28,
		ReferenceNumber: 69,
		ReferenceStart:  time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
		MinNumber:       1,
	}
}

// Number returns the epoch number for ts. Boundaries are date-only: the
// time of day within the UTC day never changes the result. ok is false
// for timestamps that fall below MinNumber (data predating tracking).
func (c Calendar) Number(ts time.Time) (int, bool) {
	d := ts.UTC().Truncate(24 * time.Hour)
	ref := c.ReferenceStart.UTC().Truncate(24 * time.Hour)
	days := int(d.Sub(ref).Hours() / 24)

	n := c.ReferenceNumber + floorDiv(days, c.LengthDays)
	if n < c.MinNumber {
		return 0, false
	}
	return n, true
}

// Label returns the epoch number formatted for storage, or "" when the
// timestamp has no epoch.
func (c Calendar) Label(ts time.Time) string {
	n, ok := c.Number(ts)
	if !ok {
		return ""
	}
	return strconv.Itoa(n)
}

// floorDiv divides flooring toward negative infinity, so dates before
// the reference land in the preceding epoch rather than the same one.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
