package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/service"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(userRepo *fakeUserRepo) *AuthService {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	return NewAuthService(userRepo, jwtSvc, zap.NewNop())
}

func TestSignupAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthService(userRepo)

	signup := &dto.SignupDTO{Email: "anna@example.com", Password: "sekret1", Name: "Anna"}
	resp, err := svc.Signup(context.Background(), signup)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "anna@example.com", resp.User.Email)
	assert.Equal(t, "employee", resp.User.Role)

	login, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "anna@example.com", Password: "sekret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthService(userRepo)

	signup := &dto.SignupDTO{Email: "anna@example.com", Password: "sekret1", Name: "Anna"}
	_, err := svc.Signup(context.Background(), signup)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signup)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "User already exists", httpErr.Message)
}

func TestLoginInvalidCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthService(userRepo)

	_, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)
	_, err = userRepo.CreateUser(context.Background(), "bob@example.com", hash, "Bob")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginDTO{Email: "bob@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMeNotFound(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Me(context.Background(), 99)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	assert.Equal(t, "User not found", httpErr.Message)
}
