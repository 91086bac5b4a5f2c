package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/guest"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// GuestHandler exposes the saved-guest roster.  All create-vs-update
// dispatch goes through the reconciler service, and every mutation
// response carries the re-fetched roster so the UI never renders a
// locally patched list.
type GuestHandler struct {
	Roster *guest.Service
}

// NewGuestHandler constructs a GuestHandler.
func NewGuestHandler(svc *guest.Service) *GuestHandler {
	return &GuestHandler{Roster: svc}
}

// List handles GET /v1/guests.
func (h *GuestHandler) List(c echo.Context) error {
	roster, err := h.Roster.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if roster == nil {
		roster = []model.Guest{}
	}
	return c.JSON(http.StatusOK, roster)
}

// Create handles POST /v1/guests.
func (h *GuestHandler) Create(c echo.Context) error {
	var in model.GuestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, roster, err := h.Roster.Upsert(c.Request().Context(), 0, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "guests": roster})
}

// Update handles PUT /v1/guests/:id.
func (h *GuestHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in model.GuestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, roster, err := h.Roster.Upsert(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "guests": roster})
}

// Delete handles DELETE /v1/guests/:id.  A guest still required by an
// in-progress booking is refused by the remote service; that refusal
// reaches the UI with the original message.
func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	roster, err := h.Roster.Remove(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"guests": roster})
}
