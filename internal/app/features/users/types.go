// internal/app/features/users/types.go
package users

// Row is one rendered user.
type Row struct {
	Key      string
	ID       string
	Username string
	Email    string
	Mailto   string
	FullName string
}
