package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a calendar month/year pair. Occurrence counters and
// penalty tiers reset on this boundary.
type Period struct {
	Month int // 1-12
	Year  int
}

// CurrentPeriod resolves the period for a point in time.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: int(now.Month()), Year: now.Year()}
}

// PeriodLedger is the per-employee-per-period record of leave balance
// inputs and outputs. One row exists per (employee_id, month, year),
// created lazily on the first event touching that period.
//
// TakenLeaves, LateArrivalCount, ShortLeaveCount, LateDeductions and
// ShortLeaveDeductions only ever increase within a period; corrections
// go through an administrative channel, never this engine.
type PeriodLedger struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	OpeningBalance decimal.Decimal
	AutoCredit     decimal.Decimal

	TakenLeaves          decimal.Decimal
	LateArrivalCount     int
	ShortLeaveCount      int
	LateDeductions       decimal.Decimal
	ShortLeaveDeductions decimal.Decimal

	// ClosingBalance is derived; Recompute is the only writer.
	ClosingBalance decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recompute re-derives the closing balance:
//
//	closing = max(0, opening + autoCredit - (taken + lateDed + shortDed))
//
// Callers must invoke it after every counter or deduction change, before
// persisting.
func (l *PeriodLedger) Recompute() {
	closing := l.OpeningBalance.
		Add(l.AutoCredit).
		Sub(l.TakenLeaves).
		Sub(l.LateDeductions).
		Sub(l.ShortLeaveDeductions)
	if closing.IsNegative() {
		closing = decimal.Zero
	}
	l.ClosingBalance = closing
}
