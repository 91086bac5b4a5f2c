package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// ProfileHandler relays profile reads and partial updates.
type ProfileHandler struct {
	API *client.Client
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(api *client.Client) *ProfileHandler {
	return &ProfileHandler{API: api}
}

// Get handles GET /v1/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := h.API.Profile(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Patch handles PATCH /v1/profile.  Empty fields are omitted from the
// upstream call so the service leaves them unchanged.
func (h *ProfileHandler) Patch(c echo.Context) error {
	var patch model.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.API.UpdateProfile(c.Request().Context(), patch); err != nil {
		return fail(c, err)
	}
	p, err := h.API.Profile(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
