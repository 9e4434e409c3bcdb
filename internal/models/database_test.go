package models_test

import (
	"github.com/growvest/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/path/does/not/exist/growvest.db")
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestRegistryExports() {
	_ = suite.createTestProfile(models.Profile{})

	for _, model := range models.Registry {
		raw, err := model.Export()
		assert.Nil(suite.T(), err)
		assert.NotNil(suite.T(), raw)
	}
}
