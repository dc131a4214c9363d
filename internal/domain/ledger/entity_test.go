package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	l := PeriodLedger{
		OpeningBalance:       decimal.NewFromInt(2),
		AutoCredit:           decimal.RequireFromString("1.5"),
		TakenLeaves:          decimal.NewFromInt(3),
		LateDeductions:       decimal.Zero,
		ShortLeaveDeductions: decimal.Zero,
	}
	l.Recompute()
	assert.Equal(t, "0.5", l.ClosingBalance.String())
}

func TestRecompute_FloorsAtZero(t *testing.T) {
	l := PeriodLedger{
		OpeningBalance:       decimal.NewFromInt(1),
		AutoCredit:           decimal.RequireFromString("1.5"),
		TakenLeaves:          decimal.NewFromInt(2),
		LateDeductions:       decimal.NewFromInt(1),
		ShortLeaveDeductions: decimal.RequireFromString("0.5"),
	}
	l.Recompute()
	assert.True(t, l.ClosingBalance.IsZero())
}

func TestCurrentPeriod(t *testing.T) {
	p := CurrentPeriod(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Period{Month: 12, Year: 2026}, p)
}
