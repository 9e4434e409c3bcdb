package planner

import (
	"github.com/google/uuid"
	"github.com/growvest/backend/internal/models"
)

// Store is the persistence port of the planner.
//
// Implementations report missing resources with errors wrapping
// models.ErrResourceNotFound. The production implementation is
// GormStore, tests use an in-memory fake.
type Store interface {
	// Profile returns the profile, if one exists.
	Profile() (models.Profile, error)

	// SaveProfile persists the profile, creating it if it does not
	// exist yet.
	SaveProfile(profile *models.Profile) error

	// Goals returns all goals, ordered by creation time.
	Goals() ([]models.Goal, error)

	// Goal returns the goal with the given ID.
	Goal(id uuid.UUID) (models.Goal, error)

	// InsertGoal persists a new goal.
	InsertGoal(goal *models.Goal) error

	// ReplaceGoal persists the full record of an existing goal.
	ReplaceGoal(goal *models.Goal) error

	// RemoveGoal deletes a goal.
	RemoveGoal(goal *models.Goal) error
}

// GormStore implements Store on the models database.
type GormStore struct{}

func NewGormStore() GormStore {
	return GormStore{}
}

func (GormStore) Profile() (models.Profile, error) {
	var profile models.Profile
	err := models.DB.Order("created_at ASC").First(&profile).Error

	return profile, err
}

func (GormStore) SaveProfile(profile *models.Profile) error {
	return models.DB.Save(profile).Error
}

func (GormStore) Goals() ([]models.Goal, error) {
	var goals []models.Goal
	err := models.DB.Order("created_at ASC").Find(&goals).Error

	return goals, err
}

func (GormStore) Goal(id uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := models.DB.First(&goal, id).Error

	return goal, err
}

func (GormStore) InsertGoal(goal *models.Goal) error {
	return models.DB.Create(goal).Error
}

func (GormStore) ReplaceGoal(goal *models.Goal) error {
	return models.DB.Save(goal).Error
}

func (GormStore) RemoveGoal(goal *models.Goal) error {
	return models.DB.Delete(goal).Error
}
