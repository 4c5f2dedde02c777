package storage

import (
	"errors"
	"fmt"
)

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is the parent of the unique constraint errors below
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUsernameTaken indicates that the username unique index rejected a write
	ErrUsernameTaken = fmt.Errorf("%w: username taken", ErrUserAlreadyExists)

	// ErrEmailTaken indicates that the email unique index rejected a write
	ErrEmailTaken = fmt.Errorf("%w: email taken", ErrUserAlreadyExists)
)
