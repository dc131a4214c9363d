// Package ledger implements the period ledger store. Every leave-day
// movement, whether a lateness penalty, a short-leave penalty or an
// approved leave, funnels through the Store here so the counters, the
// deduction totals and the cached employee balance can only move
// together.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kelola-hr/leave-ledger-go/internal/domain/employee"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/ledger"
	"github.com/kelola-hr/leave-ledger-go/internal/service/rules"
	"github.com/shopspring/decimal"
)

type store struct {
	ledgerRepo   ledger.PeriodLedgerRepository
	employeeRepo employee.EmployeeRepository
	autoCredit   decimal.Decimal
	logger       *slog.Logger
}

// NewStore builds the single writer of period ledgers. autoCredit is
// the monthly accrual seeded into every newly opened period.
func NewStore(
	ledgerRepo ledger.PeriodLedgerRepository,
	employeeRepo employee.EmployeeRepository,
	autoCredit decimal.Decimal,
	logger *slog.Logger,
) ledger.Store {
	return &store{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		autoCredit:   autoCredit,
		logger:       logger,
	}
}

// lockLedger opens (if needed) and row-locks the employee's ledger for
// the period. The opening balance of a fresh period is seeded from the
// employee's cached balance at the moment of first touch.
func (s *store) lockLedger(ctx context.Context, employeeID string, p ledger.Period) (ledger.PeriodLedger, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	return s.ledgerRepo.GetOrCreateForUpdate(ctx, employeeID, p, emp.CurrentLeaveBalance, s.autoCredit)
}

// persist recomputes the closing balance, writes the ledger row and
// mirrors the closing balance into the employee cache. Must run inside
// the caller's transaction so all three stay atomic.
func (s *store) persist(ctx context.Context, l ledger.PeriodLedger) (ledger.PeriodLedger, error) {
	l.Recompute()

	if err := s.ledgerRepo.Update(ctx, l); err != nil {
		return ledger.PeriodLedger{}, err
	}
	if err := s.employeeRepo.UpdateLeaveBalance(ctx, l.EmployeeID, l.ClosingBalance); err != nil {
		return ledger.PeriodLedger{}, fmt.Errorf("failed to mirror closing balance: %w", err)
	}

	return l, nil
}

// ApplyLateArrival implements ledger.Store.
func (s *store) ApplyLateArrival(ctx context.Context, employeeID string, p ledger.Period, lateMinutes int) (ledger.PeriodLedger, error) {
	l, err := s.lockLedger(ctx, employeeID, p)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	l.LateArrivalCount++
	deduction := rules.LateDeduction(lateMinutes, l.LateArrivalCount)
	l.LateDeductions = l.LateDeductions.Add(deduction)

	l, err = s.persist(ctx, l)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	s.logger.InfoContext(ctx, "late arrival posted",
		slog.String("employee_id", employeeID),
		slog.Int("late_minutes", lateMinutes),
		slog.Int("occurrence", l.LateArrivalCount),
		slog.String("deduction", deduction.String()),
	)

	return l, nil
}

// ApplyShortLeave implements ledger.Store.
func (s *store) ApplyShortLeave(ctx context.Context, employeeID string, p ledger.Period, shortMinutes int) (ledger.PeriodLedger, error) {
	l, err := s.lockLedger(ctx, employeeID, p)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	l.ShortLeaveCount++
	deduction := rules.ShortLeaveDeduction(shortMinutes, l.ShortLeaveCount)
	l.ShortLeaveDeductions = l.ShortLeaveDeductions.Add(deduction)

	l, err = s.persist(ctx, l)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	s.logger.InfoContext(ctx, "short leave posted",
		slog.String("employee_id", employeeID),
		slog.Int("short_minutes", shortMinutes),
		slog.Int("occurrence", l.ShortLeaveCount),
		slog.String("deduction", deduction.String()),
	)

	return l, nil
}

// ApplyTakenLeave implements ledger.Store.
func (s *store) ApplyTakenLeave(ctx context.Context, employeeID string, p ledger.Period, days decimal.Decimal) (ledger.PeriodLedger, error) {
	l, err := s.lockLedger(ctx, employeeID, p)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	l.TakenLeaves = l.TakenLeaves.Add(days)

	l, err = s.persist(ctx, l)
	if err != nil {
		return ledger.PeriodLedger{}, err
	}

	s.logger.InfoContext(ctx, "taken leave posted",
		slog.String("employee_id", employeeID),
		slog.String("days", days.String()),
		slog.String("closing_balance", l.ClosingBalance.String()),
	)

	return l, nil
}

// Get implements ledger.Store.
func (s *store) Get(ctx context.Context, employeeID string, p ledger.Period) (ledger.PeriodLedger, error) {
	return s.ledgerRepo.GetByEmployeeAndPeriod(ctx, employeeID, p)
}
