package models

// User is an account row. The password is stored verbatim, exactly as the
// user typed it; the storage layout is shared with existing diary files.
type User struct {
	ID       int64
	Username string
	Password string
}
