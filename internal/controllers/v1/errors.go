package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/growvest/backend/internal/currency"
	"github.com/growvest/backend/internal/models"
	"github.com/growvest/backend/internal/planner"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for a planner or database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	// The frontend redirects to onboarding for this status
	if errors.Is(err, planner.ErrProfileMissing) {
		return http.StatusPreconditionFailed
	}

	if errors.Is(err, planner.ErrCapacityExceeded) {
		return http.StatusConflict
	}

	if errors.Is(err, planner.ErrGoalNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// message returns the user-facing message for an error.
//
// Capacity rejections are formatted with display amounts so the user
// sees the exact shortfall.
func message(err error) string {
	var capacityErr planner.CapacityError
	if errors.As(err, &capacityErr) {
		return fmt.Sprintf("%v: the goal requires %s per month, but only %s of your monthly capacity is unallocated",
			planner.ErrCapacityExceeded,
			currency.Format(capacityErr.Contribution),
			currency.Format(capacityErr.Remaining),
		)
	}

	return err.Error()
}
