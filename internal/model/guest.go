package model

// Guest genders accepted by the remote service.  The set is closed on
// the write path; values read back are passed through untouched.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// Guest is a guest record.  The same shape serves two lifecycles: a
// roster guest owned by the authenticated user (persists across
// bookings) and a booking guest owned by a single booking.  A roster
// guest and a booking guest sharing an ID are the same record on the
// service side.
//
// Fields:
//  ID     – opaque identifier; zero before the record is persisted.
//  Name   – display name.
//  Gender – one of MALE, FEMALE, OTHER.
//  Age    – optional age in years, roughly 1–120.
type Guest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Age    *int   `json:"age,omitempty"`
}

// GuestInput is the write-side payload for creating or updating a guest,
// either on the user's roster or as part of a booking attach batch.
type GuestInput struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Age    *int   `json:"age,omitempty"`
}
