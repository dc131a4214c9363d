package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type periodLedgerRepository struct {
	db *database.DB
}

const ledgerColumns = `
	id, employee_id, month, year,
	opening_balance, auto_credit,
	late_arrival_count, short_leave_count,
	late_deductions, short_leave_deductions, taken_leaves,
	closing_balance, created_at, updated_at`

func scanLedger(row pgx.Row) (ledger.PeriodLedger, error) {
	var l ledger.PeriodLedger
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Month, &l.Year,
		&l.OpeningBalance, &l.AutoCredit,
		&l.LateArrivalCount, &l.ShortLeaveCount,
		&l.LateDeductions, &l.ShortLeaveDeductions, &l.TakenLeaves,
		&l.ClosingBalance, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetOrCreateForUpdate implements ledger.PeriodLedgerRepository. The insert
// races safely on the (employee_id, month, year) unique index and the
// follow-up select locks the row for the remainder of the transaction, so
// concurrent callers serialize on the same period ledger.
func (r *periodLedgerRepository) GetOrCreateForUpdate(ctx context.Context, employeeID string, p ledger.Period, opening, autoCredit decimal.Decimal) (ledger.PeriodLedger, error) {
	q := GetQuerier(ctx, r.db)

	closing := opening.Add(autoCredit)
	if closing.IsNegative() {
		closing = decimal.Zero
	}

	insertQuery := `
		INSERT INTO period_ledgers (
			employee_id, month, year, opening_balance, auto_credit, closing_balance
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, month, year) DO NOTHING
	`
	if _, err := q.Exec(ctx, insertQuery, employeeID, p.Month, p.Year, opening, autoCredit, closing); err != nil {
		return ledger.PeriodLedger{}, fmt.Errorf("failed to create period ledger: %w", err)
	}

	selectQuery := `
		SELECT ` + ledgerColumns + `
		FROM period_ledgers
		WHERE employee_id = $1 AND month = $2 AND year = $3
		FOR UPDATE
	`
	l, err := scanLedger(q.QueryRow(ctx, selectQuery, employeeID, p.Month, p.Year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.PeriodLedger{}, ledger.ErrLedgerNotFound
		}
		return ledger.PeriodLedger{}, fmt.Errorf("failed to lock period ledger: %w", err)
	}

	return l, nil
}

// Update implements ledger.PeriodLedgerRepository.
func (r *periodLedgerRepository) Update(ctx context.Context, l ledger.PeriodLedger) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE period_ledgers
		SET late_arrival_count = $1,
		    short_leave_count = $2,
		    late_deductions = $3,
		    short_leave_deductions = $4,
		    taken_leaves = $5,
		    closing_balance = $6,
		    updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		l.LateArrivalCount, l.ShortLeaveCount,
		l.LateDeductions, l.ShortLeaveDeductions, l.TakenLeaves,
		l.ClosingBalance, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update period ledger: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrLedgerNotFound
	}

	return nil
}

// GetByEmployeeAndPeriod implements ledger.PeriodLedgerRepository.
func (r *periodLedgerRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, p ledger.Period) (ledger.PeriodLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ledgerColumns + `
		FROM period_ledgers
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	l, err := scanLedger(q.QueryRow(ctx, query, employeeID, p.Month, p.Year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.PeriodLedger{}, ledger.ErrLedgerNotFound
		}
		return ledger.PeriodLedger{}, fmt.Errorf("failed to get period ledger: %w", err)
	}

	return l, nil
}

func NewPeriodLedgerRepository(db *database.DB) ledger.PeriodLedgerRepository {
	return &periodLedgerRepository{db: db}
}
