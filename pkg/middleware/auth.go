package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/config"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/service"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	authCfg    config.AuthConfig
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, authCfg config.AuthConfig, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		authCfg:    authCfg,
		logger:     logger,
	}
}

// Auth resolves the caller identity from the Authorization header.
//
// With a valid bearer token the identity comes from the signed claims. When
// the token is missing or invalid the behavior depends on AUTH_DEV_BYPASS:
// in bypass mode the fixed fallback identity (id=1, role=manager) is
// substituted so the app is usable without logging in; otherwise the
// request is rejected with 401.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.resolveClaims(c)
		if err != nil {
			if !m.authCfg.DevBypass {
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil,
				), m.logger)
			}
			m.logger.Debug("auth bypass: substituting default identity", zap.Error(err))
			claims = &service.JwtCustomClaim{
				UserID: m.authCfg.BypassUserID,
				Role:   m.authCfg.BypassUserRole,
			}
		}

		identity := utils.Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
		c.SetRequest(c.Request().WithContext(utils.WithIdentity(c.Request().Context(), identity)))
		return next(c)
	}
}

func (m *AuthMiddleware) resolveClaims(c echo.Context) (*service.JwtCustomClaim, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, apperrors.ErrUnauthorized
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.ErrInvalidAuthHeader
	}

	return m.jwtService.ValidateToken(parts[1])
}

// RequireRole gates a route on the resolved identity's role. An identity
// without a role is answered 401, a role outside the allowed set 403.
func (m *AuthMiddleware) RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := utils.IdentityFromContext(c.Request().Context())
			if err != nil || identity.Role == "" {
				return utils.ErrorResponse(c, apperrors.NewHttpError(
					http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil,
				), m.logger)
			}

			for _, role := range allowedRoles {
				if identity.Role == role {
					return next(c)
				}
			}

			m.logger.Warn("role check failed",
				zap.String("role", identity.Role),
				zap.Strings("allowed", allowedRoles),
				zap.Uint64("userID", identity.UserID),
			)
			return utils.ErrorResponse(c, apperrors.NewHttpError(
				http.StatusForbidden,
				apperrors.ErrForbidden.Error(),
				fmt.Errorf("Access denied. Required role: %s", strings.Join(allowedRoles, " or ")),
				map[string]interface{}{"role": identity.Role},
			), m.logger)
		}
	}
}
