package employees

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

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, first_name, last_name, is_manager
    FROM employees
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", db.Classify(err))
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.IsManager); err != nil {
			return nil, fmt.Errorf("scan employee: %w", db.Classify(err))
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", db.Classify(err))
	}
	return out, nil
}

func (s *Store) GetEmployee(ctx context.Context, employeeID int64) (Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, first_name, last_name, is_manager
    FROM employees
    WHERE employee_id = $1
  `, employeeID).Scan(&e.ID, &e.FirstName, &e.LastName, &e.IsManager)
	if err != nil {
		return Employee{}, fmt.Errorf("get employee %d: %w", employeeID, db.Classify(err))
	}
	return e, nil
}

func (s *Store) UpsertEmployee(ctx context.Context, employee Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (employee_id, first_name, last_name, is_manager)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (employee_id) DO UPDATE
    SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, is_manager = EXCLUDED.is_manager
  `, employee.ID, employee.FirstName, employee.LastName, employee.IsManager)
	if err != nil {
		return fmt.Errorf("upsert employee %d: %w", employee.ID, db.Classify(err))
	}
	return nil
}
