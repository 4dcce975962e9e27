// internal/domain/models/user.go
package models

import "strings"

// User is one entry of /api/users/.
type User struct {
	ID        Scalar `json:"id"`
	Username  Scalar `json:"username"`
	Email     Scalar `json:"email"`
	FirstName Scalar `json:"first_name"`
	LastName  Scalar `json:"last_name"`
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName.String() + " " + u.LastName.String())
}
