package models

import (
	"encoding/json"
	"strings"

	"github.com/growvest/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile is the user profile collected during onboarding.
//
// The backend is single-tenant, so there is exactly one profile. It is
// created once during onboarding and only changed by explicit edits.
type Profile struct {
	DefaultModel
	Name                      string
	Savings                   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Current liquid savings
	MonthlyInvestmentCapacity decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Ceiling for the sum of all monthly contributions
	RiskTolerance             types.RiskLevel // Default risk appetite, individual goals carry their own
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	return nil
}

// Export returns all profiles on this instance for export.
func (Profile) Export() (json.RawMessage, error) {
	var profiles []Profile
	err := DB.Unscoped().Where(&Profile{}).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&profiles)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
