package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/routes"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/migrations"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/config"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/customvalidator"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/database/postgresql"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	applogger "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/logger"
	appmiddleware "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/middleware"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/service"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	e.HideBanner = true

	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()
	if cfg.JWT.SecretKey == "" {
		logger.Fatal("JWT_SECRET_KEY is not set")
	}
	utils.SetExposeDetails(cfg.IsDevelopment())

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				return utils.ErrorResponse(c, httpErr, logger)
			}
			return nil
		},
	}))
	e.Use(middleware.CORS())
	e.Use(appmiddleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, migrations.FS); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, logger)

	if cfg.Auth.DevBypass {
		logger.Warn("authentication bypass is enabled, do not use in production")
		if err := seeders.EnsureDemoUser(context.Background(), dbPool); err != nil {
			logger.Fatal("demo user seeding failed", zap.Error(err))
		}
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	routes.InitRouter(e, dbPool, redisClient, jwtSvc, logger, cfg)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
