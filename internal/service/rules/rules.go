// Package rules holds the pure penalty-tier policy for lateness and
// short-leave events. No I/O, no state: the occurrence ordinal is an
// explicit parameter so the same decision can be replayed in tests.
package rules

import (
	"github.com/shopspring/decimal"
)

const (
	// LateGraceMinutes is the lateness grace period. Arrivals up to
	// this many minutes late are recorded but never qualify.
	LateGraceMinutes = 30

	// LateFullDayMinutes is the upper bound of the tiered lateness
	// band. Beyond it, lateness costs a full day regardless of the
	// occurrence ordinal. Policy keeps this discontinuity on purpose:
	// severe lateness is a full day even on the first occurrence.
	LateFullDayMinutes = 90

	// ShortLeaveMinutes is the early-checkout shortfall at which an
	// event qualifies as a short leave.
	ShortLeaveMinutes = 90

	// FreeOccurrences is how many qualifying occurrences per period
	// draw a warning instead of a deduction.
	FreeOccurrences = 2
)

var (
	halfDay = decimal.New(5, -1) // 0.5
	fullDay = decimal.NewFromInt(1)
)

// QualifiesLate reports whether a late arrival counts toward the
// period's occurrence tally.
func QualifiesLate(lateMinutes int) bool {
	return lateMinutes > LateGraceMinutes
}

// QualifiesShortLeave reports whether an early checkout counts toward
// the period's short-leave tally.
func QualifiesShortLeave(shortMinutes int) bool {
	return shortMinutes >= ShortLeaveMinutes
}

// LateDeduction returns the leave-day deduction for one late arrival.
// occurrence is the ordinal of this event within the period, counting
// this event (1 for the first qualifying lateness of the month).
//
//	<= 30 min            -> 0 (grace, does not qualify)
//	31..90 min, occ 1..2 -> 0 (warning)
//	31..90 min, occ >= 3 -> 0.5
//	>  90 min            -> 1.0 regardless of occurrence
func LateDeduction(lateMinutes, occurrence int) decimal.Decimal {
	if !QualifiesLate(lateMinutes) {
		return decimal.Zero
	}
	if lateMinutes > LateFullDayMinutes {
		return fullDay
	}
	if occurrence <= FreeOccurrences {
		return decimal.Zero
	}
	return halfDay
}

// ShortLeaveDeduction returns the leave-day deduction for one short
// leave. occurrence is the ordinal of this event within the period,
// counting this event.
//
//	<  90 min            -> 0 (does not qualify)
//	>= 90 min, occ 1..2  -> 0 (warning)
//	>= 90 min, occ >= 3  -> 0.5
func ShortLeaveDeduction(shortMinutes, occurrence int) decimal.Decimal {
	if !QualifiesShortLeave(shortMinutes) {
		return decimal.Zero
	}
	if occurrence <= FreeOccurrences {
		return decimal.Zero
	}
	return halfDay
}
