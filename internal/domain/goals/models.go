package goals

import "time"

type NewGoal struct {
	EmployeeID  int64
	ManagerID   int64
	Description string
	DueDate     time.Time
	Status      Status
}

// GoalView is a goal joined with the name of the manager who created it.
type GoalView struct {
	ID               int64
	EmployeeID       int64
	ManagerID        int64
	Description      string
	DueDate          time.Time
	Status           Status
	ManagerFirstName string
	ManagerLastName  string
}
