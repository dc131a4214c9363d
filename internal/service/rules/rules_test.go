package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLateDeduction_GracePeriod(t *testing.T) {
	t.Parallel()
	for _, mins := range []int{0, 1, 15, 29, 30} {
		for _, occ := range []int{1, 2, 3, 10} {
			got := LateDeduction(mins, occ)
			assert.True(t, got.IsZero(), "LateDeduction(%d, %d) = %s, want 0", mins, occ, got)
		}
		assert.False(t, QualifiesLate(mins), "QualifiesLate(%d) should be false", mins)
	}
}

func TestLateDeduction_TieredBand(t *testing.T) {
	t.Parallel()
	half := decimal.New(5, -1)

	for _, mins := range []int{31, 45, 60, 90} {
		assert.True(t, QualifiesLate(mins), "QualifiesLate(%d) should be true", mins)

		// First two qualifying occurrences draw a warning only
		assert.True(t, LateDeduction(mins, 1).IsZero())
		assert.True(t, LateDeduction(mins, 2).IsZero())

		// Third and subsequent cost half a day
		assert.True(t, LateDeduction(mins, 3).Equal(half))
		assert.True(t, LateDeduction(mins, 4).Equal(half))
		assert.True(t, LateDeduction(mins, 17).Equal(half))
	}
}

func TestLateDeduction_SevereLateness(t *testing.T) {
	t.Parallel()
	full := decimal.NewFromInt(1)

	// Beyond 90 minutes the deduction is a full day even on the first
	// occurrence. The discontinuity against the 31-90 band is policy.
	for _, mins := range []int{91, 120, 600} {
		for _, occ := range []int{1, 2, 3, 8} {
			got := LateDeduction(mins, occ)
			assert.True(t, got.Equal(full), "LateDeduction(%d, %d) = %s, want 1", mins, occ, got)
		}
	}
}

func TestShortLeaveDeduction_BelowThreshold(t *testing.T) {
	t.Parallel()
	for _, mins := range []int{0, 30, 89} {
		for _, occ := range []int{1, 3, 9} {
			got := ShortLeaveDeduction(mins, occ)
			assert.True(t, got.IsZero(), "ShortLeaveDeduction(%d, %d) = %s, want 0", mins, occ, got)
		}
		assert.False(t, QualifiesShortLeave(mins), "QualifiesShortLeave(%d) should be false", mins)
	}
}

func TestShortLeaveDeduction_Tiers(t *testing.T) {
	t.Parallel()
	half := decimal.New(5, -1)

	for _, mins := range []int{90, 91, 180} {
		assert.True(t, QualifiesShortLeave(mins))
		assert.True(t, ShortLeaveDeduction(mins, 1).IsZero())
		assert.True(t, ShortLeaveDeduction(mins, 2).IsZero())
		assert.True(t, ShortLeaveDeduction(mins, 3).Equal(half))
		assert.True(t, ShortLeaveDeduction(mins, 6).Equal(half))
	}
}

func TestBoundaries(t *testing.T) {
	t.Parallel()

	// 30 is grace, 31 qualifies
	assert.False(t, QualifiesLate(30))
	assert.True(t, QualifiesLate(31))

	// 90 stays in the tiered band, 91 is a full day
	assert.True(t, LateDeduction(90, 1).IsZero())
	assert.True(t, LateDeduction(91, 1).Equal(decimal.NewFromInt(1)))

	// 89 is not a short leave, 90 is
	assert.False(t, QualifiesShortLeave(89))
	assert.True(t, QualifiesShortLeave(90))
}
