package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// ListRosterGuests returns the authenticated user's saved guests.
func (c *Client) ListRosterGuests(ctx context.Context) ([]model.Guest, error) {
	var list []model.Guest
	err := c.get(ctx, "/users/guests", &list)
	return list, err
}

// CreateRosterGuest persists a new roster guest and returns the record
// with its service-assigned identifier.
func (c *Client) CreateRosterGuest(ctx context.Context, in model.GuestInput) (model.Guest, error) {
	var g model.Guest
	err := c.do(ctx, http.MethodPost, "/users/guests", in, &g)
	return g, err
}

// UpdateRosterGuest overwrites an existing roster guest.
func (c *Client) UpdateRosterGuest(ctx context.Context, guestID int64, in model.GuestInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/guests/%d", guestID), in, nil)
}

// DeleteRosterGuest removes a roster guest.  The remote service rejects
// the delete when the guest is still required by an in-progress booking;
// that rejection is surfaced to the caller verbatim.
func (c *Client) DeleteRosterGuest(ctx context.Context, guestID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/guests/%d", guestID), nil, nil)
}
