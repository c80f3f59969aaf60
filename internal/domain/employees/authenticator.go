package employees

import "strings"

// Authenticator decides whether secret is a valid credential for employee.
type Authenticator interface {
	Verify(employee Employee, secret string) bool
}

// FirstNameAuthenticator accepts the employee's first name, compared
// case-insensitively. It is a placeholder credential scheme, not a security boundary.
type FirstNameAuthenticator struct{}

func (FirstNameAuthenticator) Verify(employee Employee, secret string) bool {
	return strings.EqualFold(employee.FirstName, secret)
}
