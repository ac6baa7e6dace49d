package dto

import (
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
)

type CreateTeamDTO struct {
	Name string `json:"name" validate:"required"`
}

type TeamDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTeamDTO(t *entities.Team) TeamDTO {
	return TeamDTO{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}
