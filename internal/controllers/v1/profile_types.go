package v1

import (
	"fmt"

	"github.com/growvest/backend/internal/models"
	"github.com/growvest/backend/internal/planner"
	"github.com/growvest/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProfileEditable struct {
	Name                      string          `json:"name" example:"Asha" default:""`                                                // Name of the investor
	Savings                   decimal.Decimal `json:"savings" example:"250000" minimum:"0" default:"0"`                              // Total savings available today
	MonthlyInvestmentCapacity decimal.Decimal `json:"monthlyInvestmentCapacity" example:"50000" minimum:"0"`                         // Amount available for investing every month
	RiskTolerance             types.RiskLevel `json:"riskTolerance" example:"moderate" enums:"conservative,moderate,aggressive"`     // Overall risk tolerance
}

// draft returns the planner input for the editable fields
func (editable ProfileEditable) draft() planner.ProfileDraft {
	return planner.ProfileDraft{
		Name:                      editable.Name,
		Savings:                   editable.Savings,
		MonthlyInvestmentCapacity: editable.MonthlyInvestmentCapacity,
		RiskTolerance:             editable.RiskTolerance,
	}
}

type ProfileLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/profile"`     // The profile itself
	Goals    string `json:"goals" example:"https://example.com/api/v1/goals"`      // The goals belonging to the profile
	Capacity string `json:"capacity" example:"https://example.com/api/v1/capacity"` // The capacity summary
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

// newProfile returns the API representation of the resource
func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name:                      model.Name,
			Savings:                   model.Savings,
			MonthlyInvestmentCapacity: model.MonthlyInvestmentCapacity,
			RiskTolerance:             model.RiskTolerance,
		},
		Links: ProfileLinks{
			Self:     fmt.Sprintf("%s/v1/profile", url),
			Goals:    fmt.Sprintf("%s/v1/goals", url),
			Capacity: fmt.Sprintf("%s/v1/capacity", url),
		},
	}
}

type ProfileResponse struct {
	Error *string  `json:"error" example:"no profile exists yet, complete onboarding first"` // The error, if any occurred
	Data  *Profile `json:"data"`                                                             // The resource
}
