package planner

import (
	"github.com/growvest/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RemainingCapacity returns how much of the profile's monthly investment
// capacity is not yet allocated to the given goals. It never returns a
// negative amount.
func RemainingCapacity(profile models.Profile, goals []models.Goal) decimal.Decimal {
	remaining := profile.MonthlyInvestmentCapacity.Sub(contributionSum(goals))
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}

// WouldExceed reports whether adding a goal with the candidate monthly
// contribution to the other goals would exceed the profile's monthly
// investment capacity.
//
// When checking an update, otherGoals must not contain the goal that is
// being updated, so that its old contribution does not count against
// the new one.
func WouldExceed(profile models.Profile, otherGoals []models.Goal, candidate decimal.Decimal) bool {
	return contributionSum(otherGoals).Add(candidate).GreaterThan(profile.MonthlyInvestmentCapacity)
}

func contributionSum(goals []models.Goal) decimal.Decimal {
	sum := decimal.Zero
	for _, goal := range goals {
		sum = sum.Add(goal.MonthlyContribution)
	}

	return sum
}
