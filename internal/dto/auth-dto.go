package dto

import (
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
)

type SignupDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthUserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResponseDTO struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}

type MeDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	TeamID    *uint64   `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuthUserDTO(u *entities.User) AuthUserDTO {
	return AuthUserDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func NewMeDTO(u *entities.User) MeDTO {
	return MeDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		TeamID:    u.TeamID,
		CreatedAt: u.CreatedAt,
	}
}
