package entities

import "time"

type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Name         string
	Role         string
	TeamID       *uint64
	CreatedAt    time.Time

	// Joined data, not a users column.
	TeamName *string
}
