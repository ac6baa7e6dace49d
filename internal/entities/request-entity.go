package entities

import "time"

// Request is a maintenance work item filed against one piece of equipment.
type Request struct {
	ID            uint64
	EquipmentID   uint64
	TeamID        *uint64
	UserID        *uint64
	Type          string
	Status        string
	Title         string
	Description   *string
	ScheduledDate *time.Time
	StartTime     *string
	DurationHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined data, not requests columns.
	EquipmentName     *string
	EquipmentCategory *string
	TeamName          *string
	UserName          *string
}

// RequestStats is the dashboard aggregate over the whole requests table.
type RequestStats struct {
	NewCount        int64 `json:"new_count"`
	InProgressCount int64 `json:"in_progress_count"`
	RepairedCount   int64 `json:"repaired_count"`
	ScrapCount      int64 `json:"scrap_count"`
	CorrectiveCount int64 `json:"corrective_count"`
	PreventiveCount int64 `json:"preventive_count"`
	TotalCount      int64 `json:"total_count"`
}
