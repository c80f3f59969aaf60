package auth

// Identity is the logged-in caller. Handlers pass its fields explicitly to the
// directory, goal and insights services.
type Identity struct {
	EmployeeID int64
	IsManager  bool
}
