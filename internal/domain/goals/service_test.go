package goals

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"hrdash/internal/domain/apperr"
)

type memoryStore struct {
	employees map[int64][2]string
	goals     map[int64]GoalView
	nextID    int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		employees: map[int64][2]string{
			1: {"Eve", "Employee"},
			2: {"Mona", "Manager"},
		},
		goals: map[int64]GoalView{},
	}
}

func (s *memoryStore) EmployeeExists(_ context.Context, id int64) (bool, error) {
	_, ok := s.employees[id]
	return ok, nil
}

func (s *memoryStore) CreateGoal(_ context.Context, goal NewGoal) (int64, error) {
	s.nextID++
	manager := s.employees[goal.ManagerID]
	s.goals[s.nextID] = GoalView{
		ID:               s.nextID,
		EmployeeID:       goal.EmployeeID,
		ManagerID:        goal.ManagerID,
		Description:      goal.Description,
		DueDate:          goal.DueDate,
		Status:           goal.Status,
		ManagerFirstName: manager[0],
		ManagerLastName:  manager[1],
	}
	return s.nextID, nil
}

func (s *memoryStore) ListGoalsForEmployee(_ context.Context, employeeID int64) ([]GoalView, error) {
	var out []GoalView
	for _, g := range s.goals {
		if g.EmployeeID == employeeID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memoryStore) UpdateGoalStatus(_ context.Context, goalID int64, status Status) (bool, error) {
	g, ok := s.goals[goalID]
	if !ok {
		return false, nil
	}
	g.Status = status
	s.goals[goalID] = g
	return true, nil
}

var due = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

func TestCreateGoalValidation(t *testing.T) {
	tests := []struct {
		name    string
		goal    NewGoal
		wantErr error
	}{
		{
			name: "valid draft",
			goal: NewGoal{EmployeeID: 1, ManagerID: 2, Description: "Improve latency", DueDate: due, Status: StatusDraft},
		},
		{
			name:    "unknown status",
			goal:    NewGoal{EmployeeID: 1, ManagerID: 2, Description: "x", DueDate: due, Status: "Archived"},
			wantErr: apperr.ErrConstraint,
		},
		{
			name:    "lowercase status is not accepted",
			goal:    NewGoal{EmployeeID: 1, ManagerID: 2, Description: "x", DueDate: due, Status: "draft"},
			wantErr: apperr.ErrConstraint,
		},
		{
			name:    "unknown employee",
			goal:    NewGoal{EmployeeID: 99, ManagerID: 2, Description: "x", DueDate: due, Status: StatusDraft},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "unknown manager",
			goal:    NewGoal{EmployeeID: 1, ManagerID: 77, Description: "x", DueDate: due, Status: StatusDraft},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "blank description",
			goal:    NewGoal{EmployeeID: 1, ManagerID: 2, Description: "  ", DueDate: due, Status: StatusDraft},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "missing due date",
			goal:    NewGoal{EmployeeID: 1, ManagerID: 2, Description: "x", Status: StatusDraft},
			wantErr: apperr.ErrValidation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryStore()
			svc := NewService(store, StatusPolicy{})
			id, err := svc.CreateGoal(context.Background(), tc.goal)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if len(store.goals) != 0 {
					t.Fatalf("expected nothing stored, got %d goals", len(store.goals))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id <= 0 {
				t.Fatalf("expected positive id, got %d", id)
			}
		})
	}
}

func TestCreatedGoalListedOnceWithManagerName(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, StatusPolicy{})
	ctx := context.Background()

	id, err := svc.CreateGoal(ctx, NewGoal{EmployeeID: 1, ManagerID: 2, Description: "Improve latency", DueDate: due, Status: StatusDraft})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.ListGoalsForEmployee(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one goal, got %d", len(list))
	}
	got := list[0]
	if got.ID != id || got.Description != "Improve latency" || got.Status != StatusDraft || !got.DueDate.Equal(due) {
		t.Fatalf("unexpected goal: %+v", got)
	}
	if got.ManagerFirstName != "Mona" || got.ManagerLastName != "Manager" {
		t.Fatalf("unexpected manager name: %+v", got)
	}
}

func TestUpdateGoalStatus(t *testing.T) {
	tests := []struct {
		name    string
		policy  StatusPolicy
		status  Status
		wantErr error
	}{
		{name: "in progress", status: StatusInProgress},
		{name: "completed", status: StatusCompleted},
		{name: "cancelled", status: StatusCancelled},
		{name: "draft rejected by default", status: StatusDraft, wantErr: apperr.ErrConstraint},
		{name: "draft allowed by policy", policy: StatusPolicy{AllowDraftUpdate: true}, status: StatusDraft},
		{name: "unknown status", status: "Done", wantErr: apperr.ErrConstraint},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryStore()
			svc := NewService(store, tc.policy)
			ctx := context.Background()
			id, err := svc.CreateGoal(ctx, NewGoal{EmployeeID: 1, ManagerID: 2, Description: "x", DueDate: due, Status: StatusInProgress})
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			err = svc.UpdateGoalStatus(ctx, id, tc.status)
			want := tc.status
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				want = StatusInProgress
			} else if err != nil {
				t.Fatalf("update: %v", err)
			}

			list, _ := svc.ListGoalsForEmployee(ctx, 1)
			if list[0].Status != want {
				t.Fatalf("expected status %q, got %q", want, list[0].Status)
			}
		})
	}
}

func TestUpdateGoalStatusNotFound(t *testing.T) {
	svc := NewService(newMemoryStore(), StatusPolicy{})
	err := svc.UpdateGoalStatus(context.Background(), 404, StatusCompleted)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateCompletedGoalIsAllowed(t *testing.T) {
	svc := NewService(newMemoryStore(), StatusPolicy{})
	ctx := context.Background()
	id, err := svc.CreateGoal(ctx, NewGoal{EmployeeID: 1, ManagerID: 2, Description: "x", DueDate: due, Status: StatusCompleted})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.UpdateGoalStatus(ctx, id, StatusCancelled); err != nil {
		t.Fatalf("expected update of completed goal to succeed, got %v", err)
	}
}

func TestStatusPolicyTargets(t *testing.T) {
	if got := len(StatusPolicy{}.UpdateTargets()); got != 3 {
		t.Fatalf("expected 3 targets by default, got %d", got)
	}
	targets := StatusPolicy{AllowDraftUpdate: true}.UpdateTargets()
	if len(targets) != 4 || targets[0] != StatusDraft {
		t.Fatalf("expected draft first when allowed, got %v", targets)
	}
}
