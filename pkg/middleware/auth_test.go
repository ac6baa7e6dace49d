package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/config"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/service"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuth(bypass bool) (*AuthMiddleware, service.JWTService) {
	jwtSvc := service.NewJWTService("middleware-test-secret", time.Hour, zap.NewNop())
	authCfg := config.AuthConfig{DevBypass: bypass, BypassUserID: 1, BypassUserRole: "manager"}
	return NewAuthMiddleware(jwtSvc, authCfg, zap.NewNop()), jwtSvc
}

func identityHandler(c echo.Context) error {
	id, err := utils.IdentityFromContext(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": id.UserID, "role": id.Role})
}

func doRequest(mw *AuthMiddleware, header string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := identityHandler
	for i := len(extra) - 1; i >= 0; i-- {
		handler = extra[i](handler)
	}
	_ = mw.Auth(handler)(c)
	return rec
}

func TestAuthMissingTokenRejected(t *testing.T) {
	mw, _ := newTestAuth(false)

	rec := doRequest(mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Authentication required", body["error"])
}

func TestAuthBypassSubstitutesManager(t *testing.T) {
	mw, _ := newTestAuth(true)

	rec := doRequest(mw, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "manager", body["role"])
}

func TestAuthValidTokenResolvesClaims(t *testing.T) {
	mw, jwtSvc := newTestAuth(false)

	token, err := jwtSvc.GenerateToken(9, "tech@example.com", "technician")
	require.NoError(t, err)

	rec := doRequest(mw, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, "technician", body["role"])
}

func TestAuthMalformedHeaderRejected(t *testing.T) {
	mw, _ := newTestAuth(false)

	rec := doRequest(mw, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllows(t *testing.T) {
	mw, jwtSvc := newTestAuth(false)

	token, err := jwtSvc.GenerateToken(3, "boss@example.com", "manager")
	require.NoError(t, err)

	rec := doRequest(mw, "Bearer "+token, mw.RequireRole("manager"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	mw, jwtSvc := newTestAuth(false)

	token, err := jwtSvc.GenerateToken(4, "emp@example.com", "employee")
	require.NoError(t, err)

	rec := doRequest(mw, "Bearer "+token, mw.RequireRole("manager"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden", body["error"])
}

func TestRequireRoleBypassIdentityPasses(t *testing.T) {
	mw, _ := newTestAuth(true)

	rec := doRequest(mw, "", mw.RequireRole("manager"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
