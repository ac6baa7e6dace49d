package routes

import (
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/controllers"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, ctrl *controllers.AuthController) {
	group := e.Group("/auth")

	group.POST("/signup", ctrl.Signup)
	group.POST("/login", ctrl.Login)
	group.GET("/me", ctrl.Me, authMW.Auth)
}
