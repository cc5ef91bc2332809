package handler

import (
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework
)

// Health responds to liveness probes.  It performs no dependency checks so
// that a degraded upstream never flaps the process itself.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
