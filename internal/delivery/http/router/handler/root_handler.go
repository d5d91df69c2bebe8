package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root is the liveness endpoint; it answers without touching the database.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "ABUAD Farms API is running!"})
}
