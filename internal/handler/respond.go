package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
)

// fail maps a typed failure onto an HTTP response.  The message is
// passed through verbatim: when the remote service rejected something it
// said why, and the UI shows that text to the user.
func fail(c echo.Context, err error) error {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, client.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, client.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, client.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, client.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, client.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, client.ErrRemoteUnavailable):
		status = http.StatusBadGateway
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, client.NewValidationError("invalid %s", name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter with a default.
func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
