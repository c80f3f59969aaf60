package goals

import "context"

type StoreAPI interface {
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
	CreateGoal(ctx context.Context, goal NewGoal) (int64, error)
	ListGoalsForEmployee(ctx context.Context, employeeID int64) ([]GoalView, error)
	// UpdateGoalStatus reports false when no goal has the given id.
	UpdateGoalStatus(ctx context.Context, goalID int64, status Status) (bool, error)
}
