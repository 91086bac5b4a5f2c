package client

import (
	"context"
	"net/http"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// loginResponse carries the access token issued by the remote auth
// endpoint.  Refresh handling is the remote service's concern.
type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for an access token.  The token is
// returned to the caller; storing it in the session is the caller's job.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (string, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", &Error{kind: ErrRemoteUnavailable, Message: "no token in response"}
	}
	return res.AccessToken, nil
}

// Signup registers a regular user account.
func (c *Client) Signup(ctx context.Context, req model.Signup) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}

// AdminSignup registers a manager account using an invite code.
func (c *Client) AdminSignup(ctx context.Context, req model.Signup) error {
	return c.do(ctx, http.MethodPost, "/auth/admin-signup", req, nil)
}
