package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"single day", date(2026, 3, 16), date(2026, 3, 16), "1"},
		{"three days", date(2026, 3, 16), date(2026, 3, 18), "3"},
		{"spans a weekend", date(2026, 3, 20), date(2026, 3, 23), "4"},
		{"spans a month boundary", date(2026, 3, 30), date(2026, 4, 2), "4"},
		{"end before start", date(2026, 3, 18), date(2026, 3, 16), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InclusiveDayCount(tt.start, tt.end).String())
		})
	}
}

func TestInclusiveDayCount_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 16, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 17, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2", InclusiveDayCount(start, end).String())
}
