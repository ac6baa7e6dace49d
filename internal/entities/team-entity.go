package entities

import "time"

type Team struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
}
