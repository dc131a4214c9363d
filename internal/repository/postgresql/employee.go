package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/employee"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, email, manager_id, current_leave_balance, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.ManagerID,
		&emp.CurrentLeaveBalance, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetOrCreate implements employee.EmployeeRepository.
// The insert-then-read sequence is race safe: ON CONFLICT DO NOTHING
// lets two concurrent first events converge on the same row.
func (e *employeeRepository) GetOrCreate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	insert := `
		INSERT INTO employees (id, current_leave_balance)
		VALUES ($1, 0)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := q.Exec(ctx, insert, id); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to provision employee: %w", err)
	}

	return e.GetByID(ctx, id)
}

// UpdateLeaveBalance implements employee.EmployeeRepository.
func (e *employeeRepository) UpdateLeaveBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET current_leave_balance = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// IsAuthorizedApprover implements employee.EmployeeRepository.
// Walks the manager chain upward from the employee; the approver is
// authorized when they appear anywhere on it.
func (e *employeeRepository) IsAuthorizedApprover(ctx context.Context, approverID, employeeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		WITH RECURSIVE chain AS (
			SELECT manager_id, 1 AS depth
			FROM employees
			WHERE id = $1
			UNION ALL
			SELECT e.manager_id, c.depth + 1
			FROM employees e
			JOIN chain c ON e.id = c.manager_id
			WHERE c.depth < 10
		)
		SELECT EXISTS (SELECT 1 FROM chain WHERE manager_id = $2)
	`

	var authorized bool
	if err := q.QueryRow(ctx, query, employeeID, approverID).Scan(&authorized); err != nil {
		return false, fmt.Errorf("failed to check approver authority: %w", err)
	}

	return authorized, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
