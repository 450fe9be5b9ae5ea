package auth

import "errors"

var (
	ErrEmailPasswordRequired = errors.New("Email and password are required")
	ErrInvalidEmail          = errors.New("Invalid Email")
	ErrIncorrectPassword     = errors.New("Incorrect Password")
	ErrPasswordMismatch      = errors.New("Passwords do not match")
	ErrWeakPassword          = errors.New("Password must be at least 8 characters and contain a letter and a number")
	ErrEmailTaken            = errors.New("An account with this email already exists")
	ErrNotAuthenticated      = errors.New("Not authenticated")
)
