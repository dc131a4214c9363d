package attendance

import (
	"time"

	"github.com/kelola-hr/leave-ledger-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID  string   `json:"employee_id"`
	Timestamp   string   `json:"timestamp"` // RFC3339; empty means now
	WorkFrom    string   `json:"work_from"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsGeofenced *bool    `json:"is_geofenced,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		}
	}

	if r.WorkFrom != "" && !validator.IsInSlice(r.WorkFrom, []string{
		string(WorkFromOffice), string(WorkFromRemote), string(WorkFromField),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_from",
			Message: "work_from must be one of OFFICE, REMOTE, FIELD",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At resolves the request timestamp, defaulting to now.
func (r *CheckInRequest) At(now time.Time) time.Time {
	if r.Timestamp == "" {
		return now
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"` // RFC3339; empty means now
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At resolves the request timestamp, defaulting to now.
func (r *CheckOutRequest) At(now time.Time) time.Time {
	if r.Timestamp == "" {
		return now
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	CheckInTime  *string  `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	Status       string   `json:"status"`
	WorkFrom     string   `json:"work_from"`
	LateMinutes  int      `json:"late_minutes"`
	IsShort      bool     `json:"is_short"`
	ShortMinutes int      `json:"short_minutes"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	IsGeofenced  *bool    `json:"is_geofenced,omitempty"`
	IsHoliday    bool     `json:"is_holiday"`
}

type MyAttendanceFilter struct {
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
