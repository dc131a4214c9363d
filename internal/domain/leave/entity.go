package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest is one contiguous leave span. Status moves
// PENDING -> APPROVED or PENDING -> REJECTED exactly once; a decided
// request is immutable.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time // inclusive

	Type   string
	Reason string

	Status          LeaveRequestStatus
	ApprovedByID    *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayCount is the inclusive calendar span length in days. Weekends and
// holidays are deliberately not excluded.
func (r LeaveRequest) DayCount() decimal.Decimal {
	return InclusiveDayCount(r.StartDate, r.EndDate)
}

// InclusiveDayCount counts calendar days from start to end inclusive.
// Both bounds are treated date-only.
func InclusiveDayCount(start, end time.Time) decimal.Decimal {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		days = 0
	}
	return decimal.NewFromInt(days)
}
