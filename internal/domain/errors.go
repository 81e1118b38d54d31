package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("not enough quantity in stock")
	ErrUsernameTaken     = errors.New("username already registered")
	ErrUnauthorized      = errors.New("unauthorized")
)
