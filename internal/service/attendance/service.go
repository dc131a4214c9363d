// Package attendance implements the attendance recorder: normalizing
// clock events into daily records and posting rule deductions to the
// period ledger exactly once per qualifying event.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelola-hr/leave-ledger-go/internal/config"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/attendance"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/employee"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/holiday"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/jwt"
	"github.com/kelola-hr/leave-ledger-go/internal/repository/postgresql"
	"github.com/kelola-hr/leave-ledger-go/internal/service/rules"
)

type attendanceService struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	ledgerStore    ledger.Store
	shift          config.ShiftConfig
	logger         *slog.Logger

	// now is swappable for tests
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	ledgerStore ledger.Store,
	shift config.ShiftConfig,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &attendanceService{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		ledgerStore:    ledgerStore,
		shift:          shift,
		logger:         logger,
		now:            time.Now,
	}
}

// shiftBounds returns the official clock-in and clock-out instants for
// the calendar day containing t, in the shift timezone.
func (s *attendanceService) shiftBounds(t time.Time) (start, end time.Time) {
	loc := s.shift.Location()
	local := t.In(loc)

	in, _ := time.Parse("15:04", s.shift.ClockIn)
	out, _ := time.Parse("15:04", s.shift.ClockOut)

	start = time.Date(local.Year(), local.Month(), local.Day(), in.Hour(), in.Minute(), 0, 0, loc)
	end = time.Date(local.Year(), local.Month(), local.Day(), out.Hour(), out.Minute(), 0, 0, loc)
	return start, end
}

// dateOf normalizes an instant to its calendar date in the shift
// timezone. Attendance rows key on this value.
func (s *attendanceService) dateOf(t time.Time) time.Time {
	loc := s.shift.Location()
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := req.At(s.now())
	date := s.dateOf(at)
	officialStart, _ := s.shiftBounds(at)

	lateMinutes := 0
	if at.After(officialStart) {
		lateMinutes = int(at.Sub(officialStart).Minutes())
	}

	if _, err := s.employeeRepo.GetOrCreate(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workFrom := attendance.WorkFrom(req.WorkFrom)
	if workFrom == "" {
		workFrom = attendance.WorkFromOffice
	}
	status := attendance.StatusPresent
	if workFrom == attendance.WorkFromRemote {
		status = attendance.StatusWorkFromHome
	}

	checkIn := at
	record := attendance.AttendanceRecord{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		CheckIn:     &checkIn,
		Status:      status,
		WorkFrom:    workFrom,
		LateMinutes: lateMinutes,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsGeofenced: req.IsGeofenced,
		IsHoliday:   isHoliday,
	}

	var created attendance.AttendanceRecord
	err = postgresql.WithSerializableRetry(ctx, s.db, func(txCtx context.Context) error {
		rec, inserted, err := s.attendanceRepo.CreateCheckIn(txCtx, record)
		if err != nil {
			return err
		}
		if !inserted {
			if rec.CheckIn != nil {
				return attendance.ErrAlreadyCheckedIn
			}
			// A checkIn-less row exists (absence sweep backfill).
			// Check-in claims it instead of failing.
			rec.CheckIn = &checkIn
			rec.Status = status
			rec.WorkFrom = workFrom
			rec.LateMinutes = lateMinutes
			rec.Latitude = req.Latitude
			rec.Longitude = req.Longitude
			rec.IsGeofenced = req.IsGeofenced
			rec.IsHoliday = isHoliday
			if err := s.attendanceRepo.SetCheckIn(txCtx, rec); err != nil {
				return err
			}
		}

		if rules.QualifiesLate(lateMinutes) {
			period := ledger.CurrentPeriod(at)
			if _, err := s.ledgerStore.ApplyLateArrival(txCtx, req.EmployeeID, period, lateMinutes); err != nil {
				return fmt.Errorf("failed to post late arrival: %w", err)
			}
		}

		created = rec
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.InfoContext(ctx, "check-in recorded",
		slog.String("employee_id", req.EmployeeID),
		slog.Time("date", date),
		slog.Int("late_minutes", lateMinutes),
	)

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := req.At(s.now())
	date := s.dateOf(at)
	_, officialEnd := s.shiftBounds(at)

	var updated attendance.AttendanceRecord
	err := postgresql.WithSerializableRetry(ctx, s.db, func(txCtx context.Context) error {
		rec, err := s.attendanceRepo.GetByEmployeeAndDateForUpdate(txCtx, req.EmployeeID, date)
		if err != nil {
			// A missing row and a row without a checkIn are the same
			// condition to the caller: no check-in happened today.
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrNotCheckedIn
			}
			return err
		}
		if rec.CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}
		if rec.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}
		if at.Before(*rec.CheckIn) {
			return attendance.ErrCheckOutBeforeCheckIn
		}

		shortMinutes := 0
		if at.Before(officialEnd) {
			shortMinutes = int(officialEnd.Sub(at).Minutes())
		}

		checkOut := at
		rec.CheckOut = &checkOut
		rec.ShortMinutes = shortMinutes
		rec.IsShort = rules.QualifiesShortLeave(shortMinutes)
		if rec.IsShort && rec.Status == attendance.StatusPresent {
			rec.Status = attendance.StatusHalfDay
		}

		if err := s.attendanceRepo.SetCheckOut(txCtx, rec); err != nil {
			return err
		}

		if rec.IsShort {
			period := ledger.CurrentPeriod(at)
			if _, err := s.ledgerStore.ApplyShortLeave(txCtx, req.EmployeeID, period, shortMinutes); err != nil {
				return fmt.Errorf("failed to post short leave: %w", err)
			}
		}

		updated = rec
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.InfoContext(ctx, "check-out recorded",
		slog.String("employee_id", req.EmployeeID),
		slog.Time("date", date),
		slog.Int("short_minutes", updated.ShortMinutes),
	)

	return toResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *attendanceService) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

func toResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(rec.Status),
		WorkFrom:     string(rec.WorkFrom),
		LateMinutes:  rec.LateMinutes,
		IsShort:      rec.IsShort,
		ShortMinutes: rec.ShortMinutes,
		Latitude:     rec.Latitude,
		Longitude:    rec.Longitude,
		IsGeofenced:  rec.IsGeofenced,
		IsHoliday:    rec.IsHoliday,
	}
	if rec.CheckIn != nil {
		t := rec.CheckIn.Format(time.RFC3339)
		resp.CheckInTime = &t
	}
	if rec.CheckOut != nil {
		t := rec.CheckOut.Format(time.RFC3339)
		resp.CheckOutTime = &t
	}
	return resp
}
