package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/controllers"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/services"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/config"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/service"
)

// InitRouter builds the repository, service and controller graph and mounts
// every route group onto the echo instance.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	authMW := middleware.NewAuthMiddleware(jwtSvc, cfg.Auth, logger)

	userRepo := repositories.NewUserRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo)
	teamService := services.NewTeamService(teamRepo)
	equipmentService := services.NewEquipmentService(equipmentRepo, cacheRepo, logger)
	requestService := services.NewRequestService(requestRepo, userRepo, cacheRepo, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)

	runAuthRouter(e, authMW, authCtrl)
	runEquipmentRouter(e, authMW, equipmentCtrl)
	runTeamRouter(e, authMW, teamCtrl)
	runRequestRouter(e, authMW, requestCtrl)
	runUserRouter(e, authMW, userCtrl)
}
