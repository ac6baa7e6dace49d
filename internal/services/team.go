package services

import (
	"context"
	"errors"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
)

type TeamServiceInterface interface {
	List(ctx context.Context) ([]dto.TeamDTO, error)
	Find(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	Create(ctx context.Context, data *dto.CreateTeamDTO) (*dto.TeamDTO, error)
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) List(ctx context.Context) ([]dto.TeamDTO, error) {
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	out := make([]dto.TeamDTO, 0, len(teams))
	for i := range teams {
		out = append(out, dto.NewTeamDTO(&teams[i]))
	}
	return out, nil
}

func (s *TeamService) Find(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Team not found")
		}
		return nil, apperrors.Internal(err)
	}
	t := dto.NewTeamDTO(team)
	return &t, nil
}

func (s *TeamService) Create(ctx context.Context, data *dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.CreateTeam(ctx, data.Name)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	t := dto.NewTeamDTO(team)
	return &t, nil
}
