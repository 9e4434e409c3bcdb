package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/growvest/backend/internal/controllers/v1"
	"github.com/growvest/backend/internal/types"
	"github.com/growvest/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals", "")

	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGoalOptionsDetail() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodOptions, goal.Links.Self, "")

	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGoalOptionsDetailNonexistent() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals/5b95e1a9-522d-4a36-9074-32f7c15846a9", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalOptionsDetailInvalidID() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	assert.Equal(suite.T(), "Buy a house", goal.Title)
	assert.True(suite.T(), decimal.New(15497, 0).Equal(goal.MonthlyContribution), "got %s", goal.MonthlyContribution)
	assert.Equal(suite.T(), uint8(0), goal.Progress)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s", goal.ID), goal.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/profile", goal.Links.Profile)
}

func (suite *TestSuiteStandard) TestCreateGoalIgnoresSubmittedDerivedFields() {
	_ = suite.createTestProfile(defaultProfile())

	// Clients cannot set the derived fields, they are always computed
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals",
		`{ "title": "Buy a house", "targetAmount": 1200000, "timeline": 5, "category": "Housing", "riskLevel": "moderate", "monthlyContribution": 1, "progress": 99 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), decimal.New(15497, 0).Equal(response.Data.MonthlyContribution), "got %s", response.Data.MonthlyContribution)
	assert.Equal(suite.T(), uint8(0), response.Data.Progress)
}

func (suite *TestSuiteStandard) TestCreateGoalWithoutProfile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", houseGoal())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusPreconditionFailed)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "no profile exists yet, complete onboarding first", *response.Error)
}

func (suite *TestSuiteStandard) TestCreateGoalCapacityExceeded() {
	_ = suite.createTestProfile(defaultProfile())
	_ = suite.createTestGoal(houseGoal())

	// This goal needs 40033 per month, only 34503 are unallocated
	editable := v1.GoalEditable{
		Title:        "Retire early",
		TargetAmount: decimal.New(3100000, 0),
		Timeline:     5,
		Category:     types.CategoryRetirement,
		RiskLevel:    types.RiskModerate,
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "₹40,033")
	assert.Contains(suite.T(), *response.Error, "₹34,503")

	// The rejected goal is not persisted
	var list v1.GoalListResponse
	l := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.DecodeResponse(suite.T(), &l, &list)
	assert.Len(suite.T(), list.Data, 1)
}

func (suite *TestSuiteStandard) TestCreateGoalInvalidBody() {
	_ = suite.createTestProfile(defaultProfile())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", `{ "title": }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateGoalInvalidValues() {
	_ = suite.createTestProfile(defaultProfile())

	tests := []struct {
		name   string
		modify func(*v1.GoalEditable)
	}{
		{"zero target", func(e *v1.GoalEditable) { e.TargetAmount = decimal.Zero }},
		{"negative current", func(e *v1.GoalEditable) { e.CurrentAmount = decimal.New(-1, 0) }},
		{"zero timeline", func(e *v1.GoalEditable) { e.Timeline = 0 }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			editable := houseGoal()
			tt.modify(&editable)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", editable)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetGoals() {
	_ = suite.createTestProfile(defaultProfile())
	_ = suite.createTestGoal(houseGoal())

	editable := houseGoal()
	editable.Title = "Travel to Japan"
	editable.Note = "Two weeks"
	editable.TargetAmount = decimal.New(120000, 0)
	editable.Timeline = 2
	editable.Category = types.CategoryTravel
	editable.RiskLevel = types.RiskConservative
	_ = suite.createTestGoal(editable)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Buy a house", response.Data[0].Title, "goals are sorted by creation time")
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
	assert.Equal(suite.T(), uint(0), response.Pagination.Offset)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetGoalsEmptyList() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Body.String(), `"data":[]`, "an empty list must be [], not null")
}

func (suite *TestSuiteStandard) TestGetGoalsFilter() {
	_ = suite.createTestProfile(defaultProfile())
	_ = suite.createTestGoal(houseGoal())

	editable := houseGoal()
	editable.Title = "Travel to Japan"
	editable.Note = ""
	editable.Category = types.CategoryTravel
	editable.RiskLevel = types.RiskConservative
	_ = suite.createTestGoal(editable)

	tests := []struct {
		query string
		count int
	}{
		{"category=Travel", 1},
		{"category=Housing", 1},
		{"category=Retirement", 0},
		{"riskLevel=conservative", 1},
		{"riskLevel=moderate", 1},
		{"title=house", 1},
		{"search=Japan", 1},
		{"search=down", 1},
		{"note=", 1},
		{"limit=1", 1},
		{"offset=1", 1},
		{"offset=2", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetGoalsInvalidFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?riskLevel=gambling", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetGoal() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodGet, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), goal.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetGoalNonexistent() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals/5b95e1a9-522d-4a36-9074-32f7c15846a9", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "there is no goal matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestGetGoalInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateGoal() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, `{ "timeline": 10 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), uint(10), response.Data.Timeline)
	assert.True(suite.T(), decimal.New(5859, 0).Equal(response.Data.MonthlyContribution), "got %s", response.Data.MonthlyContribution)
}

func (suite *TestSuiteStandard) TestUpdateGoalProgress() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, `{ "currentAmount": 60000 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), uint8(5), response.Data.Progress)
}

func (suite *TestSuiteStandard) TestUpdateGoalCapacityExceeded() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	editable := houseGoal()
	editable.Title = "Travel"
	editable.Category = types.CategoryTravel
	_ = suite.createTestGoal(editable)

	r := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, `{ "targetAmount": 3100000 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// The goal is unchanged
	g := test.Request(suite.T(), http.MethodGet, goal.Links.Self, "")
	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &g, &response)
	assert.True(suite.T(), decimal.New(1200000, 0).Equal(response.Data.TargetAmount))
}

func (suite *TestSuiteStandard) TestUpdateGoalNonexistent() {
	_ = suite.createTestProfile(defaultProfile())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/goals/5b95e1a9-522d-4a36-9074-32f7c15846a9", `{ "timeline": 10 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateGoalInvalidBody() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, `{ "timeline": }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	g := test.Request(suite.T(), http.MethodGet, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &g, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteGoalNonexistent() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/goals/5b95e1a9-522d-4a36-9074-32f7c15846a9", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteGoalFreesCapacity() {
	_ = suite.createTestProfile(defaultProfile())
	goal := suite.createTestGoal(houseGoal())

	// Needs 40033 per month, does not fit next to the house goal
	editable := v1.GoalEditable{
		Title:        "Retire early",
		TargetAmount: decimal.New(3100000, 0),
		Timeline:     5,
		Category:     types.CategoryRetirement,
		RiskLevel:    types.RiskModerate,
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	d := test.Request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &d, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}
