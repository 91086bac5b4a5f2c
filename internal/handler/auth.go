package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// AuthHandler relays login and signup to the remote auth endpoints and
// manages the session lifecycle around them.  The gateway never sees or
// stores passwords; it only keeps the issued access token.
type AuthHandler struct {
	API  *client.Client
	Sess *session.Session
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(api *client.Client, sess *session.Session) *AuthHandler {
	return &AuthHandler{API: api, Sess: sess}
}

// resolveRoles kicks off role resolution in the background.  Best
// effort: a failure degrades to an empty role set and is logged inside
// the session.
func (h *AuthHandler) resolveRoles() {
	go h.Sess.ResolveRoles(context.Background(), func(ctx context.Context) ([]string, error) {
		p, err := h.API.Profile(ctx)
		if err != nil {
			return nil, err
		}
		return p.Roles, nil
	})
}

// Login handles POST /v1/auth/login.  On success the issued token is
// installed in the session and role resolution starts asynchronously;
// the response does not wait for it.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds model.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if creds.Email == "" || creds.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}
	tok, err := h.API.Login(c.Request().Context(), creds)
	if err != nil {
		return fail(c, err)
	}
	h.Sess.SetToken(tok)
	h.resolveRoles()
	return c.JSON(http.StatusOK, echo.Map{"authenticated": true})
}

// Signup handles POST /v1/auth/signup.  Registration does not log the
// user in; the UI sends them to the login screen afterwards.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req model.Signup
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and name are required"})
	}
	req.AdminInviteCode = ""
	if err := h.API.Signup(c.Request().Context(), req); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"registered": true})
}

// AdminSignup handles POST /v1/auth/admin-signup, which additionally
// requires the invite code checked by the remote service.
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	var req model.Signup
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" || req.AdminInviteCode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password, name and invite code are required"})
	}
	if err := h.API.AdminSignup(c.Request().Context(), req); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"registered": true})
}

// Logout handles POST /v1/auth/logout.  Token and roles are cleared
// synchronously, including the persisted copy; always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Sess.Clear()
	return c.NoContent(http.StatusNoContent)
}

// SessionInfo handles GET /v1/auth/session.  The UI uses it to decide
// which surfaces to render: rolesResolved=false means "still checking",
// not "denied", so the admin area shows a loading state instead of an
// access-denied flash.
func (h *AuthHandler) SessionInfo(c echo.Context) error {
	roles, resolved := h.Sess.Roles()
	return c.JSON(http.StatusOK, echo.Map{
		"authenticated": h.Sess.Authenticated(),
		"roles":         roles,
		"rolesResolved": resolved,
		"isManager":     h.Sess.IsManager(),
	})
}
