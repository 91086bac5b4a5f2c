package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/inventory"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// AdminInventoryHandler serves the per-date availability surface.  The
// range-patch validation and the mandatory post-patch re-fetch live in
// the inventory service.
type AdminInventoryHandler struct {
	Inventory *inventory.Service
}

// NewAdminInventoryHandler constructs an AdminInventoryHandler.
func NewAdminInventoryHandler(svc *inventory.Service) *AdminInventoryHandler {
	return &AdminInventoryHandler{Inventory: svc}
}

// List handles GET /v1/admin/inventory/rooms/:roomId.
func (h *AdminInventoryHandler) List(c echo.Context) error {
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, err)
	}
	rows, err := h.Inventory.List(c.Request().Context(), roomID)
	if err != nil {
		return fail(c, err)
	}
	if rows == nil {
		rows = []model.RoomInventoryDay{}
	}
	return c.JSON(http.StatusOK, rows)
}

// Patch handles PATCH /v1/admin/inventory/rooms/:roomId.  On success the
// response carries the refreshed rows, because the upstream patch call
// itself returns nothing.  On failure the UI keeps whatever rows it last
// saw; no refreshed data is sent that could suggest the patch half
// applied.
func (h *AdminInventoryHandler) Patch(c echo.Context) error {
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, err)
	}
	var patch model.InventoryRangePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rows, err := h.Inventory.ApplyRangePatch(c.Request().Context(), roomID, patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
