package epoch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNumber(t *testing.T) {
	cal := Default()

	tests := []struct {
		name string
		ts   time.Time
		want int
		ok   bool
	}{
		{"reference start", date(2025, time.November, 10), 69, true},
		{"last day of reference epoch", date(2025, time.December, 7), 69, true},
		{"next epoch", date(2025, time.December, 8), 70, true},
		{"day before reference", date(2025, time.November, 9), 68, true},
		{"time of day irrelevant", time.Date(2025, time.November, 10, 23, 59, 59, 0, time.UTC), 69, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := cal.Number(tt.ts)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberFloorsBeforeReference(t *testing.T) {
	cal := Default()

	// 2025-11-09 is 1 day before the reference: -1/28 must floor to -1,
	// not truncate to 0.
	n, ok := cal.Number(date(2025, time.November, 9))
	assert.True(t, ok)
	assert.Equal(t, 68, n)

	n, ok = cal.Number(date(2025, time.October, 13))
	assert.True(t, ok)
	assert.Equal(t, 68, n)

	n, ok = cal.Number(date(2025, time.October, 12))
	assert.True(t, ok)
	assert.Equal(t, 67, n)
}

func TestNumberBelowMinimum(t *testing.T) {
	cal := Default()

	// Epoch 1 started 68*28 days before the reference.
	epoch1 := date(2025, time.November, 10).AddDate(0, 0, -68*28)

	n, ok := cal.Number(epoch1)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = cal.Number(epoch1.AddDate(0, 0, -1))
	assert.False(t, ok)
	assert.Equal(t, "", cal.Label(epoch1.AddDate(0, 0, -1)))
}

func TestLabel(t *testing.T) {
	cal := Default()
	assert.Equal(t, "70", cal.Label(date(2025, time.December, 8)))
}
