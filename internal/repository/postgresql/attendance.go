package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/attendance"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, status, work_from,
	late_minutes, is_short, short_minutes,
	latitude, longitude, is_geofenced, is_holiday,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.WorkFrom,
		&rec.LateMinutes, &rec.IsShort, &rec.ShortMinutes,
		&rec.Latitude, &rec.Longitude, &rec.IsGeofenced, &rec.IsHoliday,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// CreateCheckIn implements attendance.AttendanceRepository.
// The unique index on (employee_id, date) makes check-in idempotent:
// on conflict nothing is inserted and the existing row is returned with
// created=false.
func (a *attendanceRepository) CreateCheckIn(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, check_in, status, work_from,
			late_minutes, latitude, longitude, is_geofenced, is_holiday
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		rec.Status,
		rec.WorkFrom,
		rec.LateMinutes,
		rec.Latitude,
		rec.Longitude,
		rec.IsGeofenced,
		rec.IsHoliday,
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceRecord{}, false, fmt.Errorf("failed to create attendance record: %w", err)
	}

	// Conflict: another event already created the row for this date.
	existing, err := a.GetByEmployeeAndDateForUpdate(ctx, rec.EmployeeID, rec.Date)
	if err != nil {
		return attendance.AttendanceRecord{}, false, err
	}
	return existing, false, nil
}

// GetByEmployeeAndDateForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (attendance.AttendanceRecord, error) {
	return a.getByEmployeeAndDate(ctx, employeeID, date, true)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.AttendanceRecord, error) {
	return a.getByEmployeeAndDate(ctx, employeeID, date, false)
}

func (a *attendanceRepository) getByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return rec, nil
}

// SetCheckIn implements attendance.AttendanceRepository. The guard on
// check_in IS NULL keeps a concurrent claim of the same backfilled row
// from overwriting an earlier check-in.
func (a *attendanceRepository) SetCheckIn(ctx context.Context, rec attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $1, status = $2, work_from = $3, late_minutes = $4,
		    latitude = $5, longitude = $6, is_geofenced = $7, is_holiday = $8,
		    updated_at = NOW()
		WHERE id = $9 AND check_in IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.CheckIn, rec.Status, rec.WorkFrom, rec.LateMinutes,
		rec.Latitude, rec.Longitude, rec.IsGeofenced, rec.IsHoliday,
		rec.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("failed to set check-in: %w", err)
	}

	return nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, rec attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $1, is_short = $2, short_minutes = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.CheckOut, rec.IsShort, rec.ShortMinutes, rec.Status, rec.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to set check-out: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// BulkCreateAbsences implements attendance.AttendanceRepository.
func (a *attendanceRepository) BulkCreateAbsences(ctx context.Context, records []attendance.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	q := GetQuerier(ctx, a.db)

	values := make([]string, 0, len(records))
	args := make([]interface{}, 0, len(records)*2)
	argIdx := 1
	for _, rec := range records {
		values = append(values, fmt.Sprintf("($%d, $%d, 'ABSENT')", argIdx, argIdx+1))
		args = append(args, rec.EmployeeID, rec.Date)
		argIdx += 2
	}

	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to bulk create absences: %w", err)
	}

	return nil
}

// ListEmployeeIDsWithoutRecord implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListEmployeeIDsWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_records ar
			WHERE ar.employee_id = e.id AND ar.date = $1
		)
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without record: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
