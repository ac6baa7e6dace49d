package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/customvalidator"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRequestService struct {
	createdWith *dto.CreateRequestDTO
	findErr     error
	created     *dto.RequestDTO
}

func (s *stubRequestService) List(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error) {
	return []dto.RequestDTO{}, nil
}

func (s *stubRequestService) Find(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &dto.RequestDTO{ID: id, Title: "Spindle vibration"}, nil
}

func (s *stubRequestService) Create(ctx context.Context, caller utils.Identity, data *dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	s.createdWith = data
	if s.created != nil {
		return s.created, nil
	}
	return &dto.RequestDTO{ID: 1, Title: data.Title, Type: data.Type, Status: "new"}, nil
}

func (s *stubRequestService) UpdateStatus(ctx context.Context, id uint64, data *dto.UpdateRequestStatusDTO) (*dto.RequestDTO, error) {
	return &dto.RequestDTO{ID: id, Status: data.Status}, nil
}

func (s *stubRequestService) Update(ctx context.Context, id uint64, data *dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	return &dto.RequestDTO{ID: id}, nil
}

func (s *stubRequestService) Delete(ctx context.Context, id uint64) error { return nil }

func (s *stubRequestService) Calendar(ctx context.Context, start, end string) ([]dto.CalendarEventDTO, error) {
	return []dto.CalendarEventDTO{}, nil
}

func (s *stubRequestService) Stats(ctx context.Context) (*entities.RequestStats, error) {
	return &entities.RequestStats{}, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func newJSONContext(t *testing.T, e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	caller := utils.Identity{UserID: 2, Email: "tester@example.com", Role: "manager"}
	req = req.WithContext(utils.WithIdentity(req.Context(), caller))

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateRequestReturns201(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubRequestService{}
	ctrl := NewRequestController(stub, zap.NewNop())

	body := `{"equipment_id": 3, "type": "corrective", "title": "Grinding noise"}`
	c, rec := newJSONContext(t, e, http.MethodPost, "/requests", body)

	require.NoError(t, ctrl.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.createdWith)
	assert.Equal(t, uint64(3), stub.createdWith.EquipmentID)
}

func TestCreateRequestInvalidTypeReturns400(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewRequestController(&stubRequestService{}, zap.NewNop())

	body := `{"equipment_id": 3, "type": "cosmetic", "title": "Paint it"}`
	c, rec := newJSONContext(t, e, http.MethodPost, "/requests", body)

	require.NoError(t, ctrl.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Validation failed")
}

func TestCreateRequestBadDateReturns400(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewRequestController(&stubRequestService{}, zap.NewNop())

	body := `{"equipment_id": 3, "type": "corrective", "title": "Check", "scheduled_date": "15-03-2026"}`
	c, rec := newJSONContext(t, e, http.MethodPost, "/requests", body)

	require.NoError(t, ctrl.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusInvalidValueReturns400(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewRequestController(&stubRequestService{}, zap.NewNop())

	c, rec := newJSONContext(t, e, http.MethodPatch, "/requests/5/status", `{"status": "finished"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, ctrl.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindRequestNotFoundReturns404(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubRequestService{findErr: apperrors.NotFound("Request not found")}
	ctrl := NewRequestController(stub, zap.NewNop())

	c, rec := newJSONContext(t, e, http.MethodGet, "/requests/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, ctrl.Find(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Request not found", resp["error"])
}

func TestFindRequestInvalidIDReturns400(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewRequestController(&stubRequestService{}, zap.NewNop())

	c, rec := newJSONContext(t, e, http.MethodGet, "/requests/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, ctrl.Find(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
