package domain

// User represents a registered account.
type User struct {
	ID       int64
	Username string
	Email    string
	Password string
}
