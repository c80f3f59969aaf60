package insights

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hrdash/internal/platform/db"
	"hrdash/internal/platform/querier"
)

const completedStatus = "Completed"

// Store is the Postgres implementation of StoreAPI.
type Store struct {
	DB querier.TxStarter
}

func NewStore(q querier.TxStarter) *Store {
	return &Store{DB: q}
}

func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin insights snapshot: %w", db.Classify(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out Snapshot
	if err := tx.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&out.TotalEmployees); err != nil {
		return Snapshot{}, fmt.Errorf("count employees: %w", db.Classify(err))
	}
	if err := tx.QueryRow(ctx, "SELECT COUNT(1) FROM goals").Scan(&out.TotalGoals); err != nil {
		return Snapshot{}, fmt.Errorf("count goals: %w", db.Classify(err))
	}
	if err := tx.QueryRow(ctx, `
    SELECT COALESCE(MIN(rate), 0), COALESCE(MAX(rate), 0), COALESCE(AVG(rate), 0)
    FROM (
      SELECT SUM(CASE WHEN status = $1 THEN 1 ELSE 0 END)::float8 / COUNT(1) AS rate
      FROM goals
      GROUP BY employee_id
    ) per_employee
  `, completedStatus).Scan(&out.MinRate, &out.MaxRate, &out.AvgRate); err != nil {
		return Snapshot{}, fmt.Errorf("approval rates: %w", db.Classify(err))
	}

	rows, err := tx.Query(ctx, "SELECT status, COUNT(1) FROM goals GROUP BY status ORDER BY status")
	if err != nil {
		return Snapshot{}, fmt.Errorf("goals by status: %w", db.Classify(err))
	}
	defer rows.Close()
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return Snapshot{}, fmt.Errorf("scan status count: %w", db.Classify(err))
		}
		out.GoalsByStatus = append(out.GoalsByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("goals by status: %w", db.Classify(err))
	}
	rows.Close()

	if err := tx.Commit(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("commit insights snapshot: %w", db.Classify(err))
	}
	return out, nil
}
