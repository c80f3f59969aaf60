package sqlite

import (
	"context"
	"fmt"

	"hrdash/internal/domain/employees"
)

func (s *Store) ListEmployees(ctx context.Context) ([]employees.Employee, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
    SELECT employee_id, first_name, last_name, is_manager
    FROM employees
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", classify(err))
	}
	defer rows.Close()

	out := make([]employees.Employee, 0)
	for rows.Next() {
		var e employees.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.IsManager); err != nil {
			return nil, fmt.Errorf("scan employee: %w", classify(err))
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", classify(err))
	}
	return out, nil
}

func (s *Store) GetEmployee(ctx context.Context, employeeID int64) (employees.Employee, error) {
	var e employees.Employee
	err := s.sqlDB.QueryRowContext(ctx, `
    SELECT employee_id, first_name, last_name, is_manager
    FROM employees
    WHERE employee_id = ?
  `, employeeID).Scan(&e.ID, &e.FirstName, &e.LastName, &e.IsManager)
	if err != nil {
		return employees.Employee{}, fmt.Errorf("get employee %d: %w", employeeID, classify(err))
	}
	return e, nil
}

func (s *Store) UpsertEmployee(ctx context.Context, employee employees.Employee) error {
	_, err := s.sqlDB.ExecContext(ctx, `
    INSERT INTO employees (employee_id, first_name, last_name, is_manager)
    VALUES (?, ?, ?, ?)
    ON CONFLICT (employee_id) DO UPDATE
    SET first_name = excluded.first_name, last_name = excluded.last_name, is_manager = excluded.is_manager
  `, employee.ID, employee.FirstName, employee.LastName, employee.IsManager)
	if err != nil {
		return fmt.Errorf("upsert employee %d: %w", employee.ID, classify(err))
	}
	return nil
}
