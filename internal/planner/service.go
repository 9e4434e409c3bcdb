package planner

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/growvest/backend/internal/models"
	"github.com/growvest/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Service orchestrates the goal lifecycle: it validates input, derives
// the monthly contribution and progress, enforces the capacity
// invariant and persists through the Store.
//
// The capacity invariant: the sum of all goals' monthly contributions
// never exceeds the profile's monthly investment capacity. It is
// enforced as a hard gate on every create and update. Deletes only free
// capacity and are never gated.
type Service struct {
	store Store

	// mu serializes the read-check-write sequence of create and
	// update. Without it, two concurrent creates could both pass the
	// capacity check before either is persisted.
	mu sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GoalDraft is the input for creating a goal. The monthly contribution
// and progress are always derived by the service, never accepted from
// callers.
type GoalDraft struct {
	Title         string
	Note          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Timeline      uint
	Category      types.Category
	RiskLevel     types.RiskLevel
}

func (draft GoalDraft) validate() error {
	if !draft.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: the target amount must be positive", ErrInvalidInput)
	}

	if draft.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: the current amount must not be negative", ErrInvalidInput)
	}

	if draft.Timeline == 0 {
		return fmt.Errorf("%w: the timeline must be at least one year", ErrInvalidInput)
	}

	if !draft.Category.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, types.ErrInvalidCategory)
	}

	if !draft.RiskLevel.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, types.ErrInvalidRiskLevel)
	}

	return nil
}

// GoalPatch is the input for updating a goal. Nil fields are unchanged.
type GoalPatch struct {
	Title         *string
	Note          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Timeline      *uint
	Category      *types.Category
	RiskLevel     *types.RiskLevel
}

// ProfileDraft is the input for creating or updating the profile.
type ProfileDraft struct {
	Name                      string
	Savings                   decimal.Decimal
	MonthlyInvestmentCapacity decimal.Decimal
	RiskTolerance             types.RiskLevel
}

func (draft ProfileDraft) validate() error {
	if draft.Savings.IsNegative() {
		return fmt.Errorf("%w: savings must not be negative", ErrInvalidInput)
	}

	if draft.MonthlyInvestmentCapacity.IsNegative() {
		return fmt.Errorf("%w: the monthly investment capacity must not be negative", ErrInvalidInput)
	}

	if !draft.RiskTolerance.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, types.ErrInvalidRiskLevel)
	}

	return nil
}

// Profile returns the profile. It returns ErrProfileMissing when
// onboarding has not happened yet.
func (s *Service) Profile() (models.Profile, error) {
	return s.profile()
}

// SaveProfile creates the profile or replaces the existing one.
func (s *Service) SaveProfile(draft ProfileDraft) (models.Profile, error) {
	if err := draft.validate(); err != nil {
		return models.Profile{}, err
	}

	profile, err := s.store.Profile()
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		return models.Profile{}, err
	}

	profile.Name = draft.Name
	profile.Savings = draft.Savings
	profile.MonthlyInvestmentCapacity = draft.MonthlyInvestmentCapacity
	profile.RiskTolerance = draft.RiskTolerance

	if err := s.store.SaveProfile(&profile); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// Goals returns all goals.
func (s *Service) Goals() ([]models.Goal, error) {
	return s.store.Goals()
}

// Goal returns a single goal by ID.
func (s *Service) Goal(id uuid.UUID) (models.Goal, error) {
	return s.goal(id)
}

// CreateGoal validates the draft, derives the monthly contribution and
// progress, checks the capacity invariant and persists the goal.
//
// Nothing is written when any check fails.
func (s *Service) CreateGoal(draft GoalDraft) (models.Goal, error) {
	if err := draft.validate(); err != nil {
		return models.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.profile()
	if err != nil {
		return models.Goal{}, err
	}

	contribution := MonthlyContribution(draft.TargetAmount, draft.CurrentAmount, float64(draft.Timeline), draft.RiskLevel)

	goals, err := s.store.Goals()
	if err != nil {
		return models.Goal{}, err
	}

	if WouldExceed(profile, goals, contribution) {
		return models.Goal{}, CapacityError{
			Contribution: contribution,
			Remaining:    RemainingCapacity(profile, goals),
		}
	}

	goal := models.Goal{
		Title:               draft.Title,
		Note:                draft.Note,
		ProfileID:           profile.ID,
		TargetAmount:        draft.TargetAmount,
		CurrentAmount:       draft.CurrentAmount,
		Timeline:            draft.Timeline,
		Category:            draft.Category,
		RiskLevel:           draft.RiskLevel,
		MonthlyContribution: contribution,
		Progress:            Progress(draft.CurrentAmount, draft.TargetAmount),
	}

	if err := s.store.InsertGoal(&goal); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// UpdateGoal merges the patch onto the stored goal, re-derives the
// monthly contribution and progress from the merged values, re-checks
// the capacity invariant against all other goals and persists the
// result.
//
// The contribution is always recomputed from the stored fields so that
// it can never drift from what the calculator would produce.
func (s *Service) UpdateGoal(id uuid.UUID, patch GoalPatch) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, err := s.goal(id)
	if err != nil {
		return models.Goal{}, err
	}

	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.Note != nil {
		goal.Note = *patch.Note
	}
	if patch.TargetAmount != nil {
		goal.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		goal.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Timeline != nil {
		goal.Timeline = *patch.Timeline
	}
	if patch.Category != nil {
		goal.Category = *patch.Category
	}
	if patch.RiskLevel != nil {
		goal.RiskLevel = *patch.RiskLevel
	}

	merged := GoalDraft{
		Title:         goal.Title,
		Note:          goal.Note,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Timeline:      goal.Timeline,
		Category:      goal.Category,
		RiskLevel:     goal.RiskLevel,
	}
	if err := merged.validate(); err != nil {
		return models.Goal{}, err
	}

	profile, err := s.profile()
	if err != nil {
		return models.Goal{}, err
	}

	goal.MonthlyContribution = MonthlyContribution(goal.TargetAmount, goal.CurrentAmount, float64(goal.Timeline), goal.RiskLevel)
	goal.Progress = Progress(goal.CurrentAmount, goal.TargetAmount)

	goals, err := s.store.Goals()
	if err != nil {
		return models.Goal{}, err
	}

	// The updated goal must not count against itself
	otherGoals := make([]models.Goal, 0, len(goals))
	for _, other := range goals {
		if other.ID != goal.ID {
			otherGoals = append(otherGoals, other)
		}
	}

	if WouldExceed(profile, otherGoals, goal.MonthlyContribution) {
		return models.Goal{}, CapacityError{
			Contribution: goal.MonthlyContribution,
			Remaining:    RemainingCapacity(profile, otherGoals),
		}
	}

	if err := s.store.ReplaceGoal(&goal); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// DeleteGoal removes a goal. Removal only frees capacity, so there is
// no capacity check.
func (s *Service) DeleteGoal(id uuid.UUID) error {
	goal, err := s.goal(id)
	if err != nil {
		return err
	}

	return s.store.RemoveGoal(&goal)
}

// CapacitySummary is the monthly investment capacity broken down into
// the allocated and the remaining part.
type CapacitySummary struct {
	Total     decimal.Decimal
	Allocated decimal.Decimal
	Remaining decimal.Decimal
}

// Capacity returns the capacity summary for the profile.
func (s *Service) Capacity() (CapacitySummary, error) {
	profile, err := s.profile()
	if err != nil {
		return CapacitySummary{}, err
	}

	goals, err := s.store.Goals()
	if err != nil {
		return CapacitySummary{}, err
	}

	return CapacitySummary{
		Total:     profile.MonthlyInvestmentCapacity,
		Allocated: contributionSum(goals),
		Remaining: RemainingCapacity(profile, goals),
	}, nil
}

// profile fetches the profile, translating a missing record into
// ErrProfileMissing.
func (s *Service) profile() (models.Profile, error) {
	profile, err := s.store.Profile()
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Profile{}, ErrProfileMissing
		}

		return models.Profile{}, err
	}

	return profile, nil
}

// goal fetches a goal, translating a missing record into ErrGoalNotFound.
func (s *Service) goal(id uuid.UUID) (models.Goal, error) {
	goal, err := s.store.Goal(id)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Goal{}, ErrGoalNotFound
		}

		return models.Goal{}, err
	}

	return goal, nil
}
