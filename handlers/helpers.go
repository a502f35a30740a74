package handlers

import (
	"errors"
	"net/http"

	"law_records_go/config"
	"law_records_go/services"

	"github.com/labstack/echo/v4"
)

func getConfig(c echo.Context) *config.Config {
	return c.Get("config").(*config.Config)
}

// serviceError translates the stores' error kinds into a JSON error
// response. Every handler funnels failures through here so the process keeps
// serving no matter what a single request hit.
func serviceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidFormat):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrMalformedData):
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
