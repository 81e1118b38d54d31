package entity

import "time"

// User is an operator account. Authentication is a thin credential check; the
// system has no roles beyond "logged in".
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
