package v1_test

import (
	"net/http"

	v1 "github.com/growvest/backend/internal/controllers/v1"
	"github.com/growvest/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCapacityOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/capacity", "")

	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetCapacityWithoutOnboarding() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/capacity", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusPreconditionFailed)
}

func (suite *TestSuiteStandard) TestGetCapacityWithoutGoals() {
	_ = suite.createTestProfile(defaultProfile())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/capacity", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CapacityResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), decimal.New(50000, 0).Equal(response.Data.Total))
	assert.True(suite.T(), response.Data.Allocated.IsZero())
	assert.True(suite.T(), decimal.New(50000, 0).Equal(response.Data.Remaining))
}

func (suite *TestSuiteStandard) TestGetCapacity() {
	_ = suite.createTestProfile(defaultProfile())
	_ = suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/capacity", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CapacityResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), decimal.New(50000, 0).Equal(response.Data.Total), "got %s", response.Data.Total)
	assert.True(suite.T(), decimal.New(15497, 0).Equal(response.Data.Allocated), "got %s", response.Data.Allocated)
	assert.True(suite.T(), decimal.New(34503, 0).Equal(response.Data.Remaining), "got %s", response.Data.Remaining)

	assert.Equal(suite.T(), "₹50,000", response.Data.TotalDisplay)
	assert.Equal(suite.T(), "₹15,497", response.Data.AllocatedDisplay)
	assert.Equal(suite.T(), "₹34,503", response.Data.RemainingDisplay)
}
