package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/growvest/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a financial goal working towards a target amount.
//
// MonthlyContribution and Progress are derived values. They are computed
// by the planner on every persisted write and never taken from a caller.
type Goal struct {
	DefaultModel
	Title               string
	Note                string
	Profile             Profile         `json:"-"`
	ProfileID           uuid.UUID       // The profile this goal belongs to
	TargetAmount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount to reach
	CurrentAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount saved so far
	Timeline            uint            // Years remaining to reach the target
	Category            types.Category
	RiskLevel           types.RiskLevel
	MonthlyContribution decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Required monthly contribution, derived
	Progress            uint8           // Percentage of the target already saved, derived
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) (err error) {
	if tx.Statement.Changed("ProfileID") {
		return g.checkIntegrity(tx, *g)
	}

	return nil
}

// checkIntegrity verifies that the referenced profile exists.
func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	return tx.First(&Profile{}, toSave.ProfileID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

// Export returns all goals on this instance for export.
func (Goal) Export() (json.RawMessage, error) {
	var goals []Goal
	err := DB.Unscoped().Where(&Goal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&goals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
