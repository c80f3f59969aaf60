package goals

import (
	"context"
	"fmt"

	"hrdash/internal/platform/db"
	"hrdash/internal/platform/querier"
)

// Store is the Postgres implementation of StoreAPI.
type Store struct {
	DB querier.Querier
}

func NewStore(q querier.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	var exists bool
	if err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)", employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("employee lookup: %w", db.Classify(err))
	}
	return exists, nil
}

func (s *Store) CreateGoal(ctx context.Context, goal NewGoal) (int64, error) {
	var id int64
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO goals (employee_id, manager_id, description, due_date, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING goal_id
  `, goal.EmployeeID, goal.ManagerID, goal.Description, goal.DueDate, string(goal.Status)).Scan(&id); err != nil {
		return 0, fmt.Errorf("create goal: %w", db.Classify(err))
	}
	return id, nil
}

func (s *Store) ListGoalsForEmployee(ctx context.Context, employeeID int64) ([]GoalView, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT g.goal_id, g.employee_id, g.manager_id, g.description, g.due_date, g.status, m.first_name, m.last_name
    FROM goals g
    JOIN employees m ON m.employee_id = g.manager_id
    WHERE g.employee_id = $1
    ORDER BY g.goal_id
  `, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", db.Classify(err))
	}
	defer rows.Close()

	out := make([]GoalView, 0)
	for rows.Next() {
		var g GoalView
		var status string
		if err := rows.Scan(&g.ID, &g.EmployeeID, &g.ManagerID, &g.Description, &g.DueDate, &status, &g.ManagerFirstName, &g.ManagerLastName); err != nil {
			return nil, fmt.Errorf("scan goal: %w", db.Classify(err))
		}
		g.Status = Status(status)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list goals: %w", db.Classify(err))
	}
	return out, nil
}

func (s *Store) UpdateGoalStatus(ctx context.Context, goalID int64, status Status) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE goals SET status = $1 WHERE goal_id = $2", string(status), goalID)
	if err != nil {
		return false, fmt.Errorf("update goal status: %w", db.Classify(err))
	}
	return tag.RowsAffected() > 0, nil
}
