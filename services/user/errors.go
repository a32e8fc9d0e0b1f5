package user

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("a user with this email already exists")
	// ErrUserNotFound is returned when the account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserBlocked is returned when a blocked account tries to sign in.
	ErrUserBlocked = errors.New("account is blocked")
)
