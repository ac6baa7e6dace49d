package dto

import (
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"

	"github.com/aarondl/null/v8"
)

// UserDTO is the manager-facing admin view of a user (no credential data).
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	TeamID    *uint64   `json:"team_id"`
	TeamName  *string   `json:"team_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignTeamDTO accepts an explicit null team_id to unassign the user.
type AssignTeamDTO struct {
	TeamID null.Uint64 `json:"team_id"`
}

type UpdateRoleDTO struct {
	Role string `json:"role" validate:"required,oneof=employee technician manager"`
}

func NewUserDTO(u *entities.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		TeamID:    u.TeamID,
		TeamName:  u.TeamName,
		CreatedAt: u.CreatedAt,
	}
}
