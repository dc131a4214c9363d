package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/kelola-hr/leave-ledger-go/internal/config"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/attendance"
)

// AbsenceSweeper backfills ABSENT rows for employees with no attendance
// record on the previous working day. It runs from the nightly
// scheduler; re-runs are harmless because the bulk insert skips dates
// that already have a row.
type AbsenceSweeper struct {
	attendanceRepo attendance.AttendanceRepository
	shift          config.ShiftConfig
	logger         *slog.Logger

	now func() time.Time
}

func NewAbsenceSweeper(
	attendanceRepo attendance.AttendanceRepository,
	shift config.ShiftConfig,
	logger *slog.Logger,
) *AbsenceSweeper {
	return &AbsenceSweeper{
		attendanceRepo: attendanceRepo,
		shift:          shift,
		logger:         logger,
		now:            time.Now,
	}
}

// Sweep marks every employee without a record for the previous day as
// ABSENT. Weekends are skipped.
func (s *AbsenceSweeper) Sweep(ctx context.Context) error {
	loc := s.shift.Location()
	local := s.now().In(loc).AddDate(0, 0, -1)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	ids, err := s.attendanceRepo.ListEmployeeIDsWithoutRecord(ctx, date)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	records := make([]attendance.AttendanceRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, attendance.AttendanceRecord{
			EmployeeID: id,
			Date:       date,
			Status:     attendance.StatusAbsent,
		})
	}

	if err := s.attendanceRepo.BulkCreateAbsences(ctx, records); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "absence sweep completed",
		slog.Time("date", date),
		slog.Int("marked_absent", len(records)),
	)

	return nil
}
