package goals

import (
	"context"
	"fmt"
	"strings"

	"hrdash/internal/domain/apperr"
)

type Service struct {
	store  StoreAPI
	policy StatusPolicy
}

func NewService(store StoreAPI, policy StatusPolicy) *Service {
	return &Service{store: store, policy: policy}
}

func (s *Service) Policy() StatusPolicy {
	return s.policy
}

// CreateGoal stores a goal assigned by managerID to employeeID and returns its id.
func (s *Service) CreateGoal(ctx context.Context, goal NewGoal) (int64, error) {
	if !goal.Status.Valid() {
		return 0, fmt.Errorf("%w: status %q", apperr.ErrConstraint, goal.Status)
	}
	goal.Description = strings.TrimSpace(goal.Description)
	if goal.Description == "" {
		return 0, fmt.Errorf("%w: description is required", apperr.ErrValidation)
	}
	if goal.DueDate.IsZero() {
		return 0, fmt.Errorf("%w: due date is required", apperr.ErrValidation)
	}

	exists, err := s.store.EmployeeExists(ctx, goal.EmployeeID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: employee %d does not exist", apperr.ErrValidation, goal.EmployeeID)
	}
	if goal.ManagerID != goal.EmployeeID {
		exists, err = s.store.EmployeeExists(ctx, goal.ManagerID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, fmt.Errorf("%w: manager %d does not exist", apperr.ErrValidation, goal.ManagerID)
		}
	}

	return s.store.CreateGoal(ctx, goal)
}

func (s *Service) ListGoalsForEmployee(ctx context.Context, employeeID int64) ([]GoalView, error) {
	return s.store.ListGoalsForEmployee(ctx, employeeID)
}

// UpdateGoalStatus sets the status of an existing goal. Completed and Cancelled goals
// may be updated again.
func (s *Service) UpdateGoalStatus(ctx context.Context, goalID int64, status Status) error {
	if !s.policy.CanUpdateTo(status) {
		return fmt.Errorf("%w: cannot set status %q", apperr.ErrConstraint, status)
	}
	updated, err := s.store.UpdateGoalStatus(ctx, goalID, status)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: goal %d", apperr.ErrNotFound, goalID)
	}
	return nil
}
