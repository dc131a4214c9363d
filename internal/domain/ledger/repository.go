package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// PeriodLedgerRepository defines data access for period ledger rows.
// The postgresql implementation is the only writer of the table.
type PeriodLedgerRepository interface {
	// GetOrCreateForUpdate loads the ledger for (employeeID, period)
	// under a row lock, inserting it first when absent. The insert is
	// ON CONFLICT DO NOTHING so two racing callers converge on the same
	// row; opening and autoCredit seed the row only on creation.
	//
	// Must be called inside a transaction: the returned row stays
	// locked until commit, serializing every read-decide-write on it.
	GetOrCreateForUpdate(ctx context.Context, employeeID string, p Period, opening, autoCredit decimal.Decimal) (PeriodLedger, error)

	// Update persists counters, deduction totals, taken leaves and the
	// recomputed closing balance.
	Update(ctx context.Context, l PeriodLedger) error

	// GetByEmployeeAndPeriod is the lock-free read used by the
	// dashboard projection. Returns ErrLedgerNotFound.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, p Period) (PeriodLedger, error)
}
