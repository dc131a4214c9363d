package attendance

import (
	"time"
)

// Status of a daily attendance record.
type Status string

const (
	StatusPresent      Status = "PRESENT"
	StatusAbsent       Status = "ABSENT"
	StatusHalfDay      Status = "HALF_DAY"
	StatusLeave        Status = "LEAVE"
	StatusWorkFromHome Status = "WORK_FROM_HOME"
)

// WorkFrom is where the employee worked that day.
type WorkFrom string

const (
	WorkFromOffice WorkFrom = "OFFICE"
	WorkFromRemote WorkFrom = "REMOTE"
	WorkFromField  WorkFrom = "FIELD"
)

// AttendanceRecord is one row per (employee, calendar date). Date is
// date-only, normalized to midnight in the shift timezone.
//
// LateMinutes, IsShort and ShortMinutes are derived deterministically
// from the clock times against the official shift; deduction posting
// never edits them.
type AttendanceRecord struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	Status       Status
	WorkFrom     WorkFrom
	LateMinutes  int
	IsShort      bool
	ShortMinutes int

	// Geolocation inputs, stored as given. Out of scope for the rules.
	Latitude    *float64
	Longitude   *float64
	IsGeofenced *bool

	// Informational flag from the holiday calendar; not applied to any
	// rule computation.
	IsHoliday bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
