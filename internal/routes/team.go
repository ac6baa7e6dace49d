package routes

import (
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/controllers"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/constants"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runTeamRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, ctrl *controllers.TeamController) {
	group := e.Group("/teams", authMW.Auth)

	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Find)
	group.POST("", ctrl.Create, authMW.RequireRole(constants.RoleManager))
}
