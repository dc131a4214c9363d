package attendance

import (
	"context"
)

// AttendanceService is the attendance recorder: it normalizes raw clock
// events into daily records and posts rule deductions to the period
// ledger exactly once per qualifying event.
type AttendanceService interface {
	// CheckIn records the first clock event of the day and posts the
	// lateness deduction when the event qualifies.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the day's record and posts the short-leave
	// deduction when the shortfall qualifies.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for the
	// authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)
}
