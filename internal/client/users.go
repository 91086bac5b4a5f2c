package client

import (
	"context"
	"net/http"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// Profile reads the authenticated user's profile, including the role
// list the session derives its admin gating from.
func (c *Client) Profile(ctx context.Context) (model.UserProfile, error) {
	var p model.UserProfile
	err := c.get(ctx, "/users/profile", &p)
	return p, err
}

// UpdateProfile applies a partial update to the profile.
func (c *Client) UpdateProfile(ctx context.Context, patch model.ProfilePatch) error {
	return c.do(ctx, http.MethodPatch, "/users/profile", patch, nil)
}
