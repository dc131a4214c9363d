package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out precondition violations
	ErrAlreadyCheckedIn      = errors.New("you have already checked in today")
	ErrNotCheckedIn          = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
