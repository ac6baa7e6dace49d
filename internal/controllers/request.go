package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/services"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func parseRequestFilter(c echo.Context) (dto.RequestFilter, error) {
	filter := dto.RequestFilter{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
	}
	if raw := c.QueryParam("equipment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, apperrors.BadRequest("Invalid equipment_id")
		}
		filter.EquipmentID = id
	}
	return filter, nil
}

func (ctrl *RequestController) List(c echo.Context) error {
	filter, err := parseRequestFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	requests, err := ctrl.requestService.List(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, requests)
}

func (ctrl *RequestController) Find(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	req, err := ctrl.requestService.Find(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, req)
}

func (ctrl *RequestController) Create(c echo.Context) error {
	caller, err := utils.IdentityFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var body dto.CreateRequestDTO
	if err := c.Bind(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	req, err := ctrl.requestService.Create(c.Request().Context(), caller, &body)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, req)
}

func (ctrl *RequestController) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var body dto.UpdateRequestStatusDTO
	if err := c.Bind(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	req, err := ctrl.requestService.UpdateStatus(c.Request().Context(), id, &body)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, req)
}

func (ctrl *RequestController) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var body dto.UpdateRequestDTO
	if err := c.Bind(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&body); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	req, err := ctrl.requestService.Update(c.Request().Context(), id, &body)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, req)
}

func (ctrl *RequestController) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.requestService.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, MessageBody{Message: "Request deleted successfully"})
}

func (ctrl *RequestController) Calendar(c echo.Context) error {
	events, err := ctrl.requestService.Calendar(c.Request().Context(), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, events)
}

func (ctrl *RequestController) Stats(c echo.Context) error {
	stats, err := ctrl.requestService.Stats(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, stats)
}

var exportHeaders = []string{
	"ID", "Title", "Type", "Status", "Equipment", "Category", "Team", "Reported By",
	"Scheduled Date", "Start Time", "Duration (hours)", "Created At",
}

func exportRow(item dto.RequestDTO) []interface{} {
	blank := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return []interface{}{
		item.ID, item.Title, item.Type, item.Status,
		blank(item.EquipmentName), blank(item.EquipmentCategory),
		blank(item.TeamName), blank(item.UserName),
		blank(item.ScheduledDate), blank(item.StartTime),
		item.DurationHours, item.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// Export streams the request register as a spreadsheet, honoring the same
// filters as the list endpoint.
func (ctrl *RequestController) Export(c echo.Context) error {
	filter, err := parseRequestFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	requests, err := ctrl.requestService.List(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f := excelize.NewFile()
	sheet := "Maintenance Requests"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, item := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := exportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "E", "H", 22)
	f.SetColWidth(sheet, "I", "L", 16)

	fileName := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
