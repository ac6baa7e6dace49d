package routes

import (
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/controllers"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/constants"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, ctrl *controllers.RequestController) {
	group := e.Group("/requests", authMW.Auth)

	// Fixed paths go first so they are never swallowed by /:id.
	group.GET("/calendar", ctrl.Calendar)
	group.GET("/stats/summary", ctrl.Stats)
	group.GET("/export", ctrl.Export, authMW.RequireRole(constants.RoleManager))

	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Find)
	group.POST("", ctrl.Create)
	group.PATCH("/:id/status", ctrl.UpdateStatus, authMW.RequireRole(constants.RoleTechnician, constants.RoleManager))
	group.PATCH("/:id", ctrl.Update)
	group.DELETE("/:id", ctrl.Delete, authMW.RequireRole(constants.RoleManager))
}
