package storage

import "errors"

// ErrAuthNotFound indicates that no session is stored locally.
var ErrAuthNotFound = errors.New("authentication data not found")
