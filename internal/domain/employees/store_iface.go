package employees

import "context"

type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, employeeID int64) (Employee, error)
	UpsertEmployee(ctx context.Context, employee Employee) error
}
