package sqlite

import (
	"context"
	"fmt"
	"time"

	"hrdash/internal/domain/goals"
)

func (s *Store) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	var exists bool
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = ?)", employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("employee lookup: %w", classify(err))
	}
	return exists, nil
}

func (s *Store) CreateGoal(ctx context.Context, goal goals.NewGoal) (int64, error) {
	res, err := s.sqlDB.ExecContext(ctx, `
    INSERT INTO goals (employee_id, manager_id, description, due_date, status)
    VALUES (?, ?, ?, ?, ?)
  `, goal.EmployeeID, goal.ManagerID, goal.Description, goal.DueDate.Format(dateLayout), string(goal.Status))
	if err != nil {
		return 0, fmt.Errorf("create goal: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create goal: %w", classify(err))
	}
	return id, nil
}

func (s *Store) ListGoalsForEmployee(ctx context.Context, employeeID int64) ([]goals.GoalView, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
    SELECT g.goal_id, g.employee_id, g.manager_id, g.description, g.due_date, g.status, m.first_name, m.last_name
    FROM goals g
    JOIN employees m ON m.employee_id = g.manager_id
    WHERE g.employee_id = ?
    ORDER BY g.goal_id
  `, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", classify(err))
	}
	defer rows.Close()

	out := make([]goals.GoalView, 0)
	for rows.Next() {
		var g goals.GoalView
		var dueDate, status string
		if err := rows.Scan(&g.ID, &g.EmployeeID, &g.ManagerID, &g.Description, &dueDate, &status, &g.ManagerFirstName, &g.ManagerLastName); err != nil {
			return nil, fmt.Errorf("scan goal: %w", classify(err))
		}
		parsed, err := time.Parse(dateLayout, dueDate)
		if err != nil {
			return nil, fmt.Errorf("goal %d due date %q: %w", g.ID, dueDate, err)
		}
		g.DueDate = parsed
		g.Status = goals.Status(status)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list goals: %w", classify(err))
	}
	return out, nil
}

func (s *Store) UpdateGoalStatus(ctx context.Context, goalID int64, status goals.Status) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx, "UPDATE goals SET status = ? WHERE goal_id = ?", string(status), goalID)
	if err != nil {
		return false, fmt.Errorf("update goal status: %w", classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update goal status: %w", classify(err))
	}
	return affected > 0, nil
}
