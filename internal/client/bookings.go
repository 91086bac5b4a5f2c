package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// statusResponse is the minimal status projection served by the
// dedicated status endpoint.
type statusResponse struct {
	BookingStatus string `json:"bookingStatus"`
}

// paymentResponse carries the opaque redirect handle produced by the
// payment provider integration on the remote side.
type paymentResponse struct {
	SessionURL string `json:"sessionUrl"`
}

// InitBooking creates a new booking in its initial remote state.
func (c *Client) InitBooking(ctx context.Context, req model.BookingInit) (model.Booking, error) {
	var b model.Booking
	err := c.do(ctx, http.MethodPost, "/bookings/init", req, &b)
	return b, err
}

// BookingStatus reads the authoritative status of a booking.  Safe to
// call at any time; it has no side effects on the remote side.
func (c *Client) BookingStatus(ctx context.Context, bookingID int64) (string, error) {
	var res statusResponse
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d/status", bookingID), &res); err != nil {
		return "", err
	}
	return res.BookingStatus, nil
}

// AddBookingGuests attaches the full guest batch to a booking in one
// call.  The batch is atomic from the client's perspective: on failure
// the booking's guest list stays in its last-known-good remote state.
func (c *Client) AddBookingGuests(ctx context.Context, bookingID int64, guests []model.GuestInput) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/addGuests", bookingID), guests, nil)
}

// InitiatePayment starts a payment flow and returns the provider
// redirect URL.  The status transition to CONFIRMED happens
// asynchronously and is only observable through BookingStatus.
func (c *Client) InitiatePayment(ctx context.Context, bookingID int64) (string, error) {
	var res paymentResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/payments", bookingID), nil, &res); err != nil {
		return "", err
	}
	if res.SessionURL == "" {
		return "", &Error{kind: ErrRemoteUnavailable, Message: "no payment URL in response"}
	}
	return res.SessionURL, nil
}

// CancelBooking cancels a confirmed booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/cancel", bookingID), nil, nil)
}

// MyBookings lists the authenticated user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	var list []model.Booking
	err := c.get(ctx, "/users/myBookings", &list)
	return list, err
}
