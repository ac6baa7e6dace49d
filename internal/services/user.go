package services

import (
	"context"
	"errors"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
)

type UserServiceInterface interface {
	List(ctx context.Context) ([]dto.UserDTO, error)
	ListTechnicians(ctx context.Context) ([]dto.UserDTO, error)
	AssignTeam(ctx context.Context, id uint64, data *dto.AssignTeamDTO) (*dto.UserDTO, error)
	UpdateRole(ctx context.Context, id uint64, data *dto.UpdateRoleDTO) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return toUserDTOs(users), nil
}

func (s *UserService) ListTechnicians(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.GetTechnicians(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return toUserDTOs(users), nil
}

func (s *UserService) AssignTeam(ctx context.Context, id uint64, data *dto.AssignTeamDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.UpdateUserTeam(ctx, id, data.TeamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, translateUserError(err)
	}
	u := dto.NewUserDTO(user)
	return &u, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint64, data *dto.UpdateRoleDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.UpdateUserRole(ctx, id, data.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, translateUserError(err)
	}
	u := dto.NewUserDTO(user)
	return &u, nil
}

func toUserDTOs(users []entities.User) []dto.UserDTO {
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserDTO(&users[i]))
	}
	return out
}

func translateUserError(err error) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}
	return apperrors.Internal(err)
}
