package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hrdash/internal/domain/apperr"
)

type Service struct {
	store StoreAPI
	auth  Authenticator
}

// NewService builds the directory. A nil authenticator falls back to
// FirstNameAuthenticator.
func NewService(store StoreAPI, auth Authenticator) *Service {
	if auth == nil {
		auth = FirstNameAuthenticator{}
	}
	return &Service{store: store, auth: auth}
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, employeeID int64) (Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

// Authenticate returns the employee when secret is accepted. Unknown ids and wrong
// secrets both yield apperr.ErrAuthFailure.
func (s *Service) Authenticate(ctx context.Context, employeeID int64, secret string) (Employee, error) {
	employee, err := s.store.GetEmployee(ctx, employeeID)
	if errors.Is(err, apperr.ErrNotFound) {
		return Employee{}, apperr.ErrAuthFailure
	}
	if err != nil {
		return Employee{}, fmt.Errorf("authenticate: %w", err)
	}
	if !s.auth.Verify(employee, secret) {
		return Employee{}, apperr.ErrAuthFailure
	}
	return employee, nil
}

// Provision inserts or replaces an employee record. It backs the startup seed and is
// not exposed over HTTP.
func (s *Service) Provision(ctx context.Context, employee Employee) error {
	if employee.ID <= 0 {
		return fmt.Errorf("%w: employee id must be positive", apperr.ErrValidation)
	}
	if strings.TrimSpace(employee.FirstName) == "" || strings.TrimSpace(employee.LastName) == "" {
		return fmt.Errorf("%w: employee %d needs first and last name", apperr.ErrValidation, employee.ID)
	}
	return s.store.UpsertEmployee(ctx, employee)
}
