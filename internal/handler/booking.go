package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/booking"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// BookingHandler exposes the booking lifecycle to the UI.  All gating
// decisions live in the booking service; this layer only binds requests
// and maps failures.
type BookingHandler struct {
	Bookings *booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// Init handles POST /v1/bookings.  Returns the created booking in its
// initial remote state.
func (h *BookingHandler) Init(c echo.Context) error {
	var req model.BookingInit
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	b, err := h.Bookings.Init(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// List handles GET /v1/my-bookings.
func (h *BookingHandler) List(c echo.Context) error {
	list, err := h.Bookings.MyBookings(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Booking{}
	}
	return c.JSON(http.StatusOK, list)
}

// Detail handles GET /v1/bookings/:id.  The response carries the
// authoritative status and the legal-action flags the UI renders its
// buttons from.
func (h *BookingHandler) Detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	d, err := h.Bookings.Detail(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Status handles GET /v1/bookings/:id/status, the idempotent authority
// reconciliation point.  The UI calls it after any mutation settles.
func (h *BookingHandler) Status(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	st, err := h.Bookings.RefreshStatus(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookingStatus": st})
}

// AddGuests handles POST /v1/bookings/:id/guests.  The body is the full
// guest batch; it succeeds or fails as a whole.  The returned status is
// the optimistic hint, flagged as such so the UI re-fetches.
func (h *BookingHandler) AddGuests(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var guests []model.GuestInput
	if err := c.Bind(&guests); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	hint, err := h.Bookings.AddGuests(c.Request().Context(), id, guests)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookingStatus": hint, "statusIsHint": true})
}

// Pay handles POST /v1/bookings/:id/payments and returns the provider
// redirect URL for the UI to navigate to.
func (h *BookingHandler) Pay(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	url, err := h.Bookings.InitiatePayment(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"sessionUrl": url})
}

// Cancel handles POST /v1/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.Bookings.Cancel(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookingStatus": booking.StatusCancelled})
}
