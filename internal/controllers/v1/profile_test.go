package v1_test

import (
	"net/http"

	v1 "github.com/growvest/backend/internal/controllers/v1"
	"github.com/growvest/backend/internal/types"
	"github.com/growvest/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProfileOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/profile", "")

	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetProfileWithoutOnboarding() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusPreconditionFailed)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "no profile exists yet, complete onboarding first", *response.Error)
}

func (suite *TestSuiteStandard) TestPutProfile() {
	profile := suite.createTestProfile(defaultProfile())

	assert.Equal(suite.T(), "Asha", profile.Name)
	assert.True(suite.T(), decimal.New(50000, 0).Equal(profile.MonthlyInvestmentCapacity))
	assert.Equal(suite.T(), types.RiskModerate, profile.RiskTolerance)
	assert.Equal(suite.T(), "http://example.com/v1/profile", profile.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/goals", profile.Links.Goals)
	assert.Equal(suite.T(), "http://example.com/v1/capacity", profile.Links.Capacity)
}

func (suite *TestSuiteStandard) TestPutProfileReplaces() {
	first := suite.createTestProfile(defaultProfile())

	editable := defaultProfile()
	editable.MonthlyInvestmentCapacity = decimal.New(60000, 0)
	second := suite.createTestProfile(editable)

	assert.Equal(suite.T(), first.ID, second.ID, "replacing the profile must keep its identity")
	assert.True(suite.T(), decimal.New(60000, 0).Equal(second.MonthlyInvestmentCapacity))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.New(60000, 0).Equal(response.Data.MonthlyInvestmentCapacity))
}

func (suite *TestSuiteStandard) TestPutProfileInvalidBody() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/profile", `{ "name": }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPutProfileEmptyBody() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestPutProfileInvalidValues() {
	editable := defaultProfile()
	editable.MonthlyInvestmentCapacity = decimal.New(-1, 0)

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/profile", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	editable = defaultProfile()
	editable.Savings = decimal.New(-1, 0)

	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/profile", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPutProfileInvalidRiskLevel() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/profile", `{ "riskTolerance": "gambling" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
