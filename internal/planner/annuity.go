// Package planner implements the financial planning core: the annuity
// calculation for the required monthly contribution, the capacity ledger
// over all goals, and the goal lifecycle service that ties both to
// persistence.
package planner

import (
	"math"

	"github.com/growvest/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyContribution returns the minimum monthly contribution required
// to grow currentAmount to targetAmount within the given number of
// years, assuming the current amount and every contribution compound
// monthly at the nominal annual rate implied by the risk level.
//
// The number of periods is years*12 without rounding, so fractional
// years are valid input. The result is rounded up to the next whole
// currency unit and is never negative: if the current amount alone
// already reaches the target, the contribution is zero.
//
// The function is pure. Inputs must already be validated, see
// GoalDraft.validate.
func MonthlyContribution(targetAmount, currentAmount decimal.Decimal, years float64, risk types.RiskLevel) decimal.Decimal {
	r := risk.AnnualRate() / 12
	n := years * 12

	futureValue := currentAmount.InexactFloat64() * math.Pow(1+r, n)
	needed := targetAmount.InexactFloat64() - futureValue
	if needed <= 0 {
		return decimal.Zero
	}

	// All defined risk levels have a positive rate. The zero-rate
	// branch guards a future rate table where a rate can be zero,
	// since the annuity inversion divides by (1+r)^n - 1.
	var monthly float64
	if r == 0 {
		monthly = needed / n
	} else {
		monthly = needed * r / (math.Pow(1+r, n) - 1)
	}

	return decimal.NewFromFloat(math.Ceil(monthly))
}

// Progress returns the percentage of the target amount that is already
// saved, capped at 100.
//
// targetAmount must be positive.
func Progress(currentAmount, targetAmount decimal.Decimal) uint8 {
	ratio := currentAmount.Div(targetAmount)
	if ratio.GreaterThan(decimal.New(1, 0)) {
		ratio = decimal.New(1, 0)
	}

	return uint8(ratio.Mul(decimal.New(100, 0)).Round(0).IntPart())
}
