package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// ListHotels returns all hotels owned by the authenticated manager.
func (c *Client) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	var list []model.Hotel
	err := c.get(ctx, "/admin/hotels", &list)
	return list, err
}

// CreateHotel registers a new hotel and returns the created record.
func (c *Client) CreateHotel(ctx context.Context, in model.HotelInput) (model.Hotel, error) {
	var h model.Hotel
	err := c.do(ctx, http.MethodPost, "/admin/hotels", in, &h)
	return h, err
}

// GetHotel reads one hotel owned by the manager.
func (c *Client) GetHotel(ctx context.Context, hotelID int64) (model.Hotel, error) {
	var h model.Hotel
	err := c.get(ctx, fmt.Sprintf("/admin/hotels/%d", hotelID), &h)
	return h, err
}

// UpdateHotel overwrites a hotel's editable fields.
func (c *Client) UpdateHotel(ctx context.Context, hotelID int64, in model.HotelInput) (model.Hotel, error) {
	var h model.Hotel
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/hotels/%d", hotelID), in, &h)
	return h, err
}

// ActivateHotel flips a hotel to active so it appears in public search.
func (c *Client) ActivateHotel(ctx context.Context, hotelID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/hotels/%d/activate", hotelID), nil, nil)
}

// DeleteHotel removes a hotel.
func (c *Client) DeleteHotel(ctx context.Context, hotelID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/hotels/%d", hotelID), nil, nil)
}

// HotelBookings lists the bookings placed against one hotel.
func (c *Client) HotelBookings(ctx context.Context, hotelID int64) ([]model.Booking, error) {
	var list []model.Booking
	err := c.get(ctx, fmt.Sprintf("/admin/hotels/%d/bookings", hotelID), &list)
	return list, err
}

// HotelReport fetches aggregate booking figures for one hotel.
func (c *Client) HotelReport(ctx context.Context, hotelID int64) (model.HotelReport, error) {
	var r model.HotelReport
	err := c.get(ctx, fmt.Sprintf("/admin/hotels/%d/reports", hotelID), &r)
	return r, err
}

// ListRooms returns all rooms of one hotel.
func (c *Client) ListRooms(ctx context.Context, hotelID int64) ([]model.Room, error) {
	var list []model.Room
	err := c.get(ctx, fmt.Sprintf("/admin/hotels/%d/rooms", hotelID), &list)
	return list, err
}

// CreateRoom adds a room to a hotel and returns the created record.
func (c *Client) CreateRoom(ctx context.Context, hotelID int64, in model.RoomInput) (model.Room, error) {
	var r model.Room
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/hotels/%d/rooms", hotelID), in, &r)
	return r, err
}

// GetRoom reads one room of a hotel.
func (c *Client) GetRoom(ctx context.Context, hotelID, roomID int64) (model.Room, error) {
	var r model.Room
	err := c.get(ctx, fmt.Sprintf("/admin/hotels/%d/rooms/%d", hotelID, roomID), &r)
	return r, err
}

// UpdateRoom overwrites a room's editable fields and returns the updated
// record.
func (c *Client) UpdateRoom(ctx context.Context, hotelID, roomID int64, in model.RoomInput) (model.Room, error) {
	var r model.Room
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/hotels/%d/rooms/%d", hotelID, roomID), in, &r)
	return r, err
}

// DeleteRoom removes a room.
func (c *Client) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/hotels/%d/rooms/%d", hotelID, roomID), nil, nil)
}
