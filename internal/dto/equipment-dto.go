package dto

import (
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name              string  `json:"name" validate:"required"`
	Category          *string `json:"category"`
	Location          *string `json:"location"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id"`
}

// UpdateEquipmentDTO distinguishes three states per nullable field: a nil
// pointer means "not supplied", an invalid null value clears the column,
// a valid one sets it.
type UpdateEquipmentDTO struct {
	Name              *string      `json:"name" validate:"omitempty,min=1"`
	Category          *null.String `json:"category"`
	Location          *null.String `json:"location"`
	MaintenanceTeamID *null.Uint64 `json:"maintenance_team_id"`
	IsUsable          *bool        `json:"is_usable"`
}

func (d *UpdateEquipmentDTO) Empty() bool {
	return d.Name == nil && d.Category == nil && d.Location == nil &&
		d.MaintenanceTeamID == nil && d.IsUsable == nil
}

type EquipmentDTO struct {
	ID                uint64    `json:"id"`
	Name              string    `json:"name"`
	Category          *string   `json:"category"`
	Location          *string   `json:"location"`
	MaintenanceTeamID *uint64   `json:"maintenance_team_id"`
	IsUsable          bool      `json:"is_usable"`
	CreatedAt         time.Time `json:"created_at"`
	TeamName          *string   `json:"team_name"`
}

type AutofillDTO struct {
	TeamID   *uint64 `json:"team_id"`
	Category *string `json:"category"`
	TeamName *string `json:"team_name"`
}

type OpenRequestCountDTO struct {
	EquipmentID uint64 `json:"equipment_id"`
	OpenCount   int64  `json:"open_count"`
}

func NewEquipmentDTO(e *entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		Location:          e.Location,
		MaintenanceTeamID: e.MaintenanceTeamID,
		IsUsable:          e.Usable(),
		CreatedAt:         e.CreatedAt,
		TeamName:          e.TeamName,
	}
}
