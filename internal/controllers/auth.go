package controllers

import (
	"net/http"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/services"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var body dto.SignupDTO
	if err := c.Bind(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resp, err := ctrl.authService.Signup(c.Request().Context(), &body)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var body dto.LoginDTO
	if err := c.Bind(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	resp, err := ctrl.authService.Login(c.Request().Context(), &body)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, resp)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	caller, err := utils.IdentityFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	me, err := ctrl.authService.Me(c.Request().Context(), caller.UserID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, me)
}
