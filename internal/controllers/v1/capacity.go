package v1

import (
	"net/http"

	"github.com/growvest/backend/internal/currency"
	"github.com/growvest/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Capacity struct {
	Total            decimal.Decimal `json:"total" example:"50000"`            // Monthly investment capacity of the profile
	Allocated        decimal.Decimal `json:"allocated" example:"15497"`        // Sum of the monthly contributions of all goals
	Remaining        decimal.Decimal `json:"remaining" example:"34503"`        // Capacity still available for new goals
	TotalDisplay     string          `json:"totalDisplay" example:"₹50,000"`   // Total, formatted for display
	AllocatedDisplay string          `json:"allocatedDisplay" example:"₹15,497"` // Allocated, formatted for display
	RemainingDisplay string          `json:"remainingDisplay" example:"₹34,503"` // Remaining, formatted for display
}

type CapacityResponse struct {
	Error *string   `json:"error" example:"no profile exists yet, complete onboarding first"` // The error, if any occurred
	Data  *Capacity `json:"data"`                                                             // The resource
}

// RegisterCapacityRoutes registers the routes for the capacity summary
// with the RouterGroup that is passed.
func RegisterCapacityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCapacity)
	r.GET("", GetCapacity)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Capacity
// @Success		204
// @Router			/v1/capacity [options]
func OptionsCapacity(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get capacity
// @Description	Returns the monthly investment capacity, broken down into allocated and remaining
// @Tags			Capacity
// @Produce		json
// @Success		200	{object}	CapacityResponse
// @Failure		412	{object}	CapacityResponse
// @Failure		500	{object}	CapacityResponse
// @Router			/v1/capacity [get]
func GetCapacity(c *gin.Context) {
	summary, err := svc.Capacity()
	if err != nil {
		s := message(err)
		c.JSON(status(err), CapacityResponse{
			Error: &s,
		})
		return
	}

	data := Capacity{
		Total:            summary.Total,
		Allocated:        summary.Allocated,
		Remaining:        summary.Remaining,
		TotalDisplay:     currency.Format(summary.Total),
		AllocatedDisplay: currency.Format(summary.Allocated),
		RemainingDisplay: currency.Format(summary.Remaining),
	}
	c.JSON(http.StatusOK, CapacityResponse{Data: &data})
}
