package model

// RoleHotelManager is the elevated role required for the admin surface
// (hotel, room and inventory management).
const RoleHotelManager = "HOTEL_MANAGER"

// UserProfile is the authenticated user's profile as served by the
// remote service.  Roles is the source of the session's derived role
// set; the remaining fields feed the profile screen.
type UserProfile struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	Name        *string  `json:"name,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	DateOfBirth *string  `json:"dateOfBirth,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// ProfilePatch is the write-side payload for updating the profile.
// Empty fields are omitted so the service leaves them unchanged.
type ProfilePatch struct {
	Name        string `json:"name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// Credentials is the login payload relayed to the remote auth endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup is the registration payload.  AdminInviteCode is only set on
// the admin signup path and omitted otherwise.
type Signup struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	AdminInviteCode string `json:"adminInviteCode,omitempty"`
}
