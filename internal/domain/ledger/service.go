package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the period ledger store: the single writer of PeriodLedger
// rows and of the employee balance cache that mirrors them.
//
// The Apply methods are read-decide-write units. They must run inside a
// caller-owned transaction (they join it via the context); the row lock
// taken by GetOrCreateForUpdate serializes concurrent events on the
// same ledger so no occurrence count is ever read stale.
type Store interface {
	// ApplyLateArrival increments the late occurrence counter and posts
	// the tiered lateness deduction for one qualifying check-in.
	ApplyLateArrival(ctx context.Context, employeeID string, p Period, lateMinutes int) (PeriodLedger, error)

	// ApplyShortLeave increments the short-leave counter and posts the
	// tiered deduction for one qualifying early check-out.
	ApplyShortLeave(ctx context.Context, employeeID string, p Period, shortMinutes int) (PeriodLedger, error)

	// ApplyTakenLeave merges an approved leave's day count into the
	// period and posts the new closing balance.
	ApplyTakenLeave(ctx context.Context, employeeID string, p Period, days decimal.Decimal) (PeriodLedger, error)

	// Get is the read-only projection for dashboards.
	Get(ctx context.Context, employeeID string, p Period) (PeriodLedger, error)
}
