package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance
// records. At most one row exists per (employee_id, date); the unique
// constraint on that pair backs every idempotency guard here.
type AttendanceRepository interface {
	// CreateCheckIn inserts the record for (employeeID, date). When a
	// row already exists (for example an ABSENT row from the nightly
	// sweep) it is returned with created=false so the caller can decide
	// whether check-in is still allowed.
	CreateCheckIn(ctx context.Context, record AttendanceRecord) (rec AttendanceRecord, created bool, err error)

	// GetByEmployeeAndDateForUpdate loads the row under a row lock for
	// the check-out read-modify-write. Returns ErrAttendanceNotFound.
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (AttendanceRecord, error)

	// GetByEmployeeAndDate is the lock-free read used by projections.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (AttendanceRecord, error)

	// SetCheckIn writes the check-in time and its derived fields onto an
	// existing row that has no checkIn yet (an absence sweep backfill).
	SetCheckIn(ctx context.Context, record AttendanceRecord) error

	// SetCheckOut writes the check-out time and the derived shortfall
	// fields on an existing row.
	SetCheckOut(ctx context.Context, record AttendanceRecord) error

	// List retrieves an employee's records with filters and pagination
	List(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]AttendanceRecord, int64, error)

	// BulkCreateAbsences inserts ABSENT rows, skipping dates that
	// already have a record.
	BulkCreateAbsences(ctx context.Context, records []AttendanceRecord) error

	// ListEmployeeIDsWithoutRecord returns active employees missing an
	// attendance row for date. Used by the absence sweep.
	ListEmployeeIDsWithoutRecord(ctx context.Context, date time.Time) ([]string, error)
}
