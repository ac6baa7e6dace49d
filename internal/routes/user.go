package routes

import (
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/controllers"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/constants"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runUserRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, ctrl *controllers.UserController) {
	group := e.Group("/users", authMW.Auth, authMW.RequireRole(constants.RoleManager))

	group.GET("", ctrl.List)
	group.GET("/technicians", ctrl.ListTechnicians)
	group.PATCH("/:id/team", ctrl.AssignTeam)
	group.PATCH("/:id/role", ctrl.UpdateRole)
}
