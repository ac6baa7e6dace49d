package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/service"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, data *dto.SignupDTO) (*dto.AuthResponseDTO, error)
	Login(ctx context.Context, data *dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context, userID uint64) (*dto.MeDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwt      service.JWTService
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwt service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, data *dto.SignupDTO) (*dto.AuthResponseDTO, error) {
	_, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err == nil {
		return nil, apperrors.BadRequest("User already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := utils.HashPassword(data.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user, err := s.userRepo.CreateUser(ctx, data.Email, hash, data.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.BadRequest("User already exists")
		}
		return nil, apperrors.Internal(err)
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user signed up", zap.Uint64("user_id", user.ID))
	return &dto.AuthResponseDTO{Token: token, User: dto.NewAuthUserDTO(user)}, nil
}

func (s *AuthService) Login(ctx context.Context, data *dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Internal(err)
	}

	if err := utils.CheckPasswordHash(data.Password, user.PasswordHash); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dto.AuthResponseDTO{Token: token, User: dto.NewAuthUserDTO(user)}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*dto.MeDTO, error) {
	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, "User not found", nil, nil)
		}
		return nil, apperrors.Internal(err)
	}
	me := dto.NewMeDTO(user)
	return &me, nil
}
