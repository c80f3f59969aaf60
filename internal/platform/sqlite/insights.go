package sqlite

import (
	"context"
	"fmt"

	"hrdash/internal/domain/insights"
)

func (s *Store) Snapshot(ctx context.Context) (insights.Snapshot, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return insights.Snapshot{}, fmt.Errorf("begin insights snapshot: %w", classify(err))
	}
	defer func() { _ = tx.Rollback() }()

	var out insights.Snapshot
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM employees").Scan(&out.TotalEmployees); err != nil {
		return insights.Snapshot{}, fmt.Errorf("count employees: %w", classify(err))
	}
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM goals").Scan(&out.TotalGoals); err != nil {
		return insights.Snapshot{}, fmt.Errorf("count goals: %w", classify(err))
	}
	if err := tx.QueryRowContext(ctx, `
    SELECT COALESCE(MIN(rate), 0.0), COALESCE(MAX(rate), 0.0), COALESCE(AVG(rate), 0.0)
    FROM (
      SELECT CAST(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS REAL) / COUNT(1) AS rate
      FROM goals
      GROUP BY employee_id
    ) per_employee
  `, "Completed").Scan(&out.MinRate, &out.MaxRate, &out.AvgRate); err != nil {
		return insights.Snapshot{}, fmt.Errorf("approval rates: %w", classify(err))
	}

	rows, err := tx.QueryContext(ctx, "SELECT status, COUNT(1) FROM goals GROUP BY status ORDER BY status")
	if err != nil {
		return insights.Snapshot{}, fmt.Errorf("goals by status: %w", classify(err))
	}
	defer rows.Close()
	for rows.Next() {
		var sc insights.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return insights.Snapshot{}, fmt.Errorf("scan status count: %w", classify(err))
		}
		out.GoalsByStatus = append(out.GoalsByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return insights.Snapshot{}, fmt.Errorf("goals by status: %w", classify(err))
	}
	if err := rows.Close(); err != nil {
		return insights.Snapshot{}, fmt.Errorf("goals by status: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return insights.Snapshot{}, fmt.Errorf("commit insights snapshot: %w", classify(err))
	}
	return out, nil
}
