package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domain "github.com/kelola-hr/leave-ledger-go/internal/domain/attendance"
	"github.com/kelola-hr/leave-ledger-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSweeper(now time.Time) *AbsenceSweeper {
	attendanceTestInit()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewAbsenceSweeper(postgresql.NewAttendanceRepository(testAttendanceDB), testShift, logger)
	s.now = func() time.Time { return now }
	return s
}

func TestSweep_MarksMissingEmployeesAbsent(t *testing.T) {
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	// Tuesday 2026-03-03; the sweep covers Monday 2026-03-02.
	now := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)

	checkedIn := createAttendanceTestEmployee(t, ctx, "5")
	missing := createAttendanceTestEmployee(t, ctx, "5")

	svc := newTestAttendanceService(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, domain.CheckInRequest{EmployeeID: checkedIn})
	require.NoError(t, err)

	require.NoError(t, newTestSweeper(now).Sweep(ctx))

	var status string
	err = testAttendanceDB.QueryRow(ctx, `
		SELECT status FROM attendance_records
		WHERE employee_id = $1 AND date = '2026-03-02'
	`, missing).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAbsent), status)

	// The employee who checked in keeps their record untouched.
	err = testAttendanceDB.QueryRow(ctx, `
		SELECT status FROM attendance_records
		WHERE employee_id = $1 AND date = '2026-03-02'
	`, checkedIn).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPresent), status)
}

func TestSweep_SkipsWeekends(t *testing.T) {
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	createAttendanceTestEmployee(t, ctx, "5")

	// Monday: the previous day is Sunday, nothing to mark.
	now := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	require.NoError(t, newTestSweeper(now).Sweep(ctx))

	var count int
	err := testAttendanceDB.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_records").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSweep_Rerun(t *testing.T) {
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	createAttendanceTestEmployee(t, ctx, "5")

	now := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
	require.NoError(t, newTestSweeper(now).Sweep(ctx))
	require.NoError(t, newTestSweeper(now).Sweep(ctx))

	var count int
	err := testAttendanceDB.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_records").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
