package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// AdminHotelHandler serves the manager's hotel administration surface.
// Role enforcement happens in middleware; these handlers assume the
// session belongs to a hotel manager.
type AdminHotelHandler struct {
	API *client.Client
}

// NewAdminHotelHandler constructs an AdminHotelHandler.
func NewAdminHotelHandler(api *client.Client) *AdminHotelHandler {
	return &AdminHotelHandler{API: api}
}

// List handles GET /v1/admin/hotels.
func (h *AdminHotelHandler) List(c echo.Context) error {
	hotels, err := h.API.ListHotels(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	return c.JSON(http.StatusOK, hotels)
}

// Create handles POST /v1/admin/hotels.
func (h *AdminHotelHandler) Create(c echo.Context) error {
	var in model.HotelInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.Name == "" || in.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and city are required"})
	}
	created, err := h.API.CreateHotel(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Detail handles GET /v1/admin/hotels/:id.  The hotel itself must load;
// its bookings and report are auxiliary informational fetches and
// degrade to an empty list / null instead of failing the whole screen.
func (h *AdminHotelHandler) Detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()
	hotel, err := h.API.GetHotel(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	bookings, err := h.API.HotelBookings(ctx, id)
	if err != nil {
		bookings = []model.Booking{}
	}
	var report *model.HotelReport
	if r, err := h.API.HotelReport(ctx, id); err == nil {
		report = &r
	}
	return c.JSON(http.StatusOK, echo.Map{
		"hotel":    hotel,
		"bookings": bookings,
		"report":   report,
	})
}

// Update handles PUT /v1/admin/hotels/:id.
func (h *AdminHotelHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in model.HotelInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	updated, err := h.API.UpdateHotel(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Activate handles PATCH /v1/admin/hotels/:id/activate.
func (h *AdminHotelHandler) Activate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.API.ActivateHotel(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"activated": true})
}

// Delete handles DELETE /v1/admin/hotels/:id.
func (h *AdminHotelHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.API.DeleteHotel(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
