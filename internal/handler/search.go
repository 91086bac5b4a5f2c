package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/paging"
)

// SearchHandler serves the public hotel browse surface.  Search results
// are normalized into the canonical page shape at this boundary; neither
// of the two upstream envelope variants leaks past it.
type SearchHandler struct {
	API *client.Client
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(api *client.Client) *SearchHandler {
	return &SearchHandler{API: api}
}

// SearchHotels handles GET /v1/hotels/search.  Query parameters: city
// (required), roomsCount (default 1), page (default 0, zero-based) and
// size (default 10, capped at 100).
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city is required"})
	}
	roomsCount := queryInt(c, "roomsCount", 1)
	if roomsCount < 1 {
		roomsCount = 1
	}
	page := queryInt(c, "page", 0)
	if page < 0 {
		page = 0
	}
	size := queryInt(c, "size", 10)
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	raw, err := h.API.SearchHotels(c.Request().Context(), city, roomsCount, page, size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, paging.Normalize(raw))
}

// HotelInfo handles GET /v1/hotels/:id, the public hotel detail with its
// bookable rooms.
func (h *SearchHandler) HotelInfo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	info, err := h.API.HotelInfo(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, info)
}
