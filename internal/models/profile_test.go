package models_test

import (
	"encoding/json"

	"github.com/growvest/backend/internal/models"
	"github.com/growvest/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	name := "\t Asha   "

	profile := suite.createTestProfile(models.Profile{
		Name:                      name,
		MonthlyInvestmentCapacity: decimal.New(50000, 0),
	})

	assert.Equal(suite.T(), "Asha", profile.Name)
}

func (suite *TestSuiteStandard) TestProfileExport() {
	_ = suite.createTestProfile(models.Profile{
		Name:                      "Asha",
		Savings:                   decimal.New(250000, 0),
		MonthlyInvestmentCapacity: decimal.New(50000, 0),
		RiskTolerance:             types.RiskModerate,
	})

	raw, err := models.Profile{}.Export()
	assert.Nil(suite.T(), err)

	var profiles []models.Profile
	err = json.Unmarshal(raw, &profiles)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), profiles, 1)
	assert.Equal(suite.T(), "Asha", profiles[0].Name)
}

func (suite *TestSuiteStandard) TestProfileTimestampsUTC() {
	profile := suite.createTestProfile(models.Profile{
		MonthlyInvestmentCapacity: decimal.New(50000, 0),
	})

	var loaded models.Profile
	err := models.DB.First(&loaded, profile.ID).Error
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "UTC", loaded.CreatedAt.Location().String())
	assert.Equal(suite.T(), "UTC", loaded.UpdatedAt.Location().String())
}
