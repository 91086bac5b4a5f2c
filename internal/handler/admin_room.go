package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// AdminRoomHandler serves room administration under one hotel.
type AdminRoomHandler struct {
	API *client.Client
}

// NewAdminRoomHandler constructs an AdminRoomHandler.
func NewAdminRoomHandler(api *client.Client) *AdminRoomHandler {
	return &AdminRoomHandler{API: api}
}

func roomInput(c echo.Context) (model.RoomInput, error) {
	var in model.RoomInput
	if err := c.Bind(&in); err != nil {
		return in, client.NewValidationError("invalid request body")
	}
	if in.Type == "" {
		return in, client.NewValidationError("room type is required")
	}
	if in.BasePrice < 0 {
		return in, client.NewValidationError("base price must not be negative")
	}
	if in.TotalCount < 1 {
		in.TotalCount = 1
	}
	if in.Capacity < 1 {
		in.Capacity = 1
	}
	return in, nil
}

// List handles GET /v1/admin/hotels/:id/rooms.
func (h *AdminRoomHandler) List(c echo.Context) error {
	hotelID, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	rooms, err := h.API.ListRooms(c.Request().Context(), hotelID)
	if err != nil {
		return fail(c, err)
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /v1/admin/hotels/:id/rooms.
func (h *AdminRoomHandler) Create(c echo.Context) error {
	hotelID, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	in, err := roomInput(c)
	if err != nil {
		return fail(c, err)
	}
	created, err := h.API.CreateRoom(c.Request().Context(), hotelID, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /v1/admin/hotels/:id/rooms/:roomId.
func (h *AdminRoomHandler) Get(c echo.Context) error {
	hotelID, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, err)
	}
	room, err := h.API.GetRoom(c.Request().Context(), hotelID, roomID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// Update handles PUT /v1/admin/hotels/:id/rooms/:roomId.
func (h *AdminRoomHandler) Update(c echo.Context) error {
	hotelID, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, err)
	}
	in, err := roomInput(c)
	if err != nil {
		return fail(c, err)
	}
	updated, err := h.API.UpdateRoom(c.Request().Context(), hotelID, roomID, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/admin/hotels/:id/rooms/:roomId.
func (h *AdminRoomHandler) Delete(c echo.Context) error {
	hotelID, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, err)
	}
	if err := h.API.DeleteRoom(c.Request().Context(), hotelID, roomID); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
