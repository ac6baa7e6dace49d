package routes

import (
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/controllers"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, ctrl *controllers.EquipmentController) {
	group := e.Group("/equipment", authMW.Auth)

	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Find)
	group.POST("", ctrl.Create)
	group.PATCH("/:id", ctrl.Update)
	group.DELETE("/:id", ctrl.Delete)
	group.GET("/:id/autofill", ctrl.Autofill)
	group.GET("/:id/requests/count", ctrl.OpenRequestCount)
}
