package controllers

import (
	"net/http"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/services"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: teamService, logger: logger}
}

func (ctrl *TeamController) List(c echo.Context) error {
	teams, err := ctrl.teamService.List(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, teams)
}

func (ctrl *TeamController) Find(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	team, err := ctrl.teamService.Find(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, team)
}

func (ctrl *TeamController) Create(c echo.Context) error {
	var body dto.CreateTeamDTO
	if err := c.Bind(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	team, err := ctrl.teamService.Create(c.Request().Context(), &body)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, team)
}
