package models_test

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/growvest/backend/internal/models"
	"github.com/growvest/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	profile := suite.createTestProfile(models.Profile{
		MonthlyInvestmentCapacity: decimal.New(50000, 0),
	})

	goal := suite.createTestGoal(models.Goal{
		Title:     "  Buy a house \t",
		Note:      " Down payment  ",
		ProfileID: profile.ID,
	})

	assert.Equal(suite.T(), "Buy a house", goal.Title)
	assert.Equal(suite.T(), "Down payment", goal.Note)
}

func (suite *TestSuiteStandard) TestGoalProfileMustExist() {
	goal := models.Goal{
		Title:        "Orphaned",
		ProfileID:    uuid.New(),
		TargetAmount: decimal.New(100000, 0),
		Timeline:     5,
		Category:     types.CategoryOther,
		RiskLevel:    types.RiskModerate,
	}

	err := models.DB.Create(&goal).Error
	assert.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoalNotFoundError() {
	var goal models.Goal
	err := models.DB.First(&goal, uuid.New()).Error

	assert.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "goal", "the error must name the resource type")
}

func (suite *TestSuiteStandard) TestGoalExport() {
	profile := suite.createTestProfile(models.Profile{
		MonthlyInvestmentCapacity: decimal.New(50000, 0),
	})

	_ = suite.createTestGoal(models.Goal{Title: "First", ProfileID: profile.ID})
	_ = suite.createTestGoal(models.Goal{Title: "Second", ProfileID: profile.ID})

	raw, err := models.Goal{}.Export()
	assert.Nil(suite.T(), err)

	var goals []models.Goal
	err = json.Unmarshal(raw, &goals)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), goals, 2)
}

func (suite *TestSuiteStandard) TestGoalGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var goal models.Goal
	err := models.DB.First(&goal, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
