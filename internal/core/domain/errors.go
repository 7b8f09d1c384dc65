package domain

import "errors"

var (
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("missing required field")
	ErrEmailTaken         = errors.New("email already registered")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrTokenMissing       = errors.New("missing token")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)
