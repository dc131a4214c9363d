package holiday

import (
	"context"
	"time"
)

// HolidayRepository is the company holiday calendar collaborator.
// The calendar is consulted for informational flags only; lateness and
// leave-day counting deliberately ignore it.
type HolidayRepository interface {
	// IsHoliday reports whether date (date-only) is a company holiday
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
