package v1_test

import (
	"net/http"

	v1 "github.com/growvest/backend/internal/controllers/v1"
	"github.com/growvest/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")

	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	_ = suite.createTestProfile(defaultProfile())
	_ = suite.createTestGoal(houseGoal())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "GNU Terry Pratchett", response.Clacks)
	assert.Contains(suite.T(), response.Data, "Profile")
	assert.Contains(suite.T(), response.Data, "Goal")
	assert.False(suite.T(), response.CreationTime.IsZero())
}

func (suite *TestSuiteStandard) TestExportDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
