package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository defines data access for the employee aggregate.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetOrCreate provisions an employee row on first attendance event.
	// The insert is race safe (ON CONFLICT DO NOTHING + re-read), never
	// a check-then-insert.
	GetOrCreate(ctx context.Context, id string) (Employee, error)

	// UpdateLeaveBalance writes the cached balance. Callers must invoke
	// this inside the same transaction as the ledger write it mirrors.
	UpdateLeaveBalance(ctx context.Context, id string, balance decimal.Decimal) error

	// IsAuthorizedApprover reports whether approverID sits anywhere in
	// employeeID's management chain.
	IsAuthorizedApprover(ctx context.Context, approverID, employeeID string) (bool, error)
}
