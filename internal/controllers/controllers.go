package controllers

import (
	"strconv"

	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	"github.com/labstack/echo/v4"
)

// MessageBody is the wire format for mutation acknowledgements.
type MessageBody struct {
	Message string `json:"message"`
}

func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest("Invalid " + name)
	}
	return id, nil
}
