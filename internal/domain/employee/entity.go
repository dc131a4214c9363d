package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the minimal slice of the employee aggregate this engine
// needs: identity, the manager edge used for approval authority, and the
// denormalized leave balance cache.
//
// CurrentLeaveBalance mirrors the closing balance of whichever period
// ledger was written last. It is a read optimization, never the source
// of truth, and is only written inside ledger transactions.
type Employee struct {
	ID                  string
	FullName            *string
	Email               *string
	ManagerID           *string
	CurrentLeaveBalance decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
