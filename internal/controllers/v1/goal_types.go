package v1

import (
	"fmt"

	"github.com/growvest/backend/internal/models"
	"github.com/growvest/backend/internal/planner"
	"github.com/growvest/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Title         string          `json:"title" example:"Buy a house" default:""`                                                        // Name of the goal
	Note          string          `json:"note" example:"Down payment for a 2BHK" default:""`                                             // Note about the goal
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"1200000" minimum:"0.00000001" maximum:"999999999999.99999999"`           // The amount to reach
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"50000" minimum:"0" default:"0"`                                         // The amount saved so far
	Timeline      uint            `json:"timeline" example:"5" minimum:"1"`                                                              // Years remaining to reach the target
	Category      types.Category  `json:"category" example:"Housing"`                                                                    // What the goal is saved for
	RiskLevel     types.RiskLevel `json:"riskLevel" example:"moderate" enums:"conservative,moderate,aggressive"`                         // Risk level determining the assumed return rate
}

// draft returns the planner input for the editable fields
func (editable GoalEditable) draft() planner.GoalDraft {
	return planner.GoalDraft{
		Title:         editable.Title,
		Note:          editable.Note,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Timeline:      editable.Timeline,
		Category:      editable.Category,
		RiskLevel:     editable.RiskLevel,
	}
}

// GoalUpdate is the request body for goal updates. Fields that are not
// part of the request stay unchanged.
type GoalUpdate struct {
	Title         *string          `json:"title" example:"Buy a house"`
	Note          *string          `json:"note" example:"Down payment for a 2BHK"`
	TargetAmount  *decimal.Decimal `json:"targetAmount" example:"1500000"`
	CurrentAmount *decimal.Decimal `json:"currentAmount" example:"100000"`
	Timeline      *uint            `json:"timeline" example:"10"`
	Category      *types.Category  `json:"category" example:"Housing"`
	RiskLevel     *types.RiskLevel `json:"riskLevel" example:"conservative"`
}

// patch returns the planner input for the set fields
func (update GoalUpdate) patch() planner.GoalPatch {
	return planner.GoalPatch{
		Title:         update.Title,
		Note:          update.Note,
		TargetAmount:  update.TargetAmount,
		CurrentAmount: update.CurrentAmount,
		Timeline:      update.Timeline,
		Category:      update.Category,
		RiskLevel:     update.RiskLevel,
	}
}

type GoalLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profile"`                                 // The profile this goal belongs to
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"15497"` // Required monthly contribution, derived
	Progress            uint8           `json:"progress" example:"4"`                // Percentage of the target already saved, derived
	Links               GoalLinks       `json:"links"`
}

// newGoal returns the API representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Title:         model.Title,
			Note:          model.Note,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Timeline:      model.Timeline,
			Category:      model.Category,
			RiskLevel:     model.RiskLevel,
		},
		MonthlyContribution: model.MonthlyContribution,
		Progress:            model.Progress,
		Links: GoalLinks{
			Self:    fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profile", url),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Title     string          `form:"title" filterField:"false"`  // By title
	Note      string          `form:"note" filterField:"false"`   // By the note
	Search    string          `form:"search" filterField:"false"` // By string in title or note
	Category  types.Category  `form:"category"`                   // By category
	RiskLevel types.RiskLevel `form:"riskLevel"`                  // By risk level
	Offset    uint            `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

// model returns the database resource for the query filter fields.
// String fields are handled in the controller function.
func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		Category:  f.Category,
		RiskLevel: f.RiskLevel,
	}
}
