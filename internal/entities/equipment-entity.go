package entities

import "time"

type Equipment struct {
	ID                uint64
	Name              string
	Category          *string
	Location          *string
	MaintenanceTeamID *uint64
	// Nullable on purpose: rows created before the is_usable column was
	// added carry NULL and are treated as usable.
	IsUsable  *bool
	CreatedAt time.Time

	// Joined data, not an equipment column.
	TeamName *string
}

func (e *Equipment) Usable() bool {
	return e.IsUsable == nil || *e.IsUsable
}
