package model

// Booking mirrors a booking record as returned by the remote booking
// service.  The status string is remote-authoritative: this type never
// invents a value that was not echoed by the server.  Amount and
// RoomsCount are pointers because the service omits them on bookings
// that have not been priced yet.
//
// Fields:
//  ID           – opaque booking identifier assigned by the service.
//  Status       – remote lifecycle status (e.g. RESERVED, CONFIRMED).
//  CheckInDate  – calendar date of arrival (YYYY-MM-DD).
//  CheckOutDate – calendar date of departure, strictly after check-in.
//  Amount       – total price computed by the service, if available.
//  RoomsCount   – number of rooms booked, if reported.
//  Guests       – guests attached to this booking, in attach order.
type Booking struct {
	ID           int64    `json:"id"`
	Status       string   `json:"bookingStatus"`
	CheckInDate  string   `json:"checkInDate"`
	CheckOutDate string   `json:"checkOutDate"`
	Amount       *float64 `json:"amount,omitempty"`
	RoomsCount   *int     `json:"roomsCount,omitempty"`
	Guests       []Guest  `json:"guests,omitempty"`
}

// BookingInit carries the parameters of the "init booking" intent.  All
// fields are required by the remote service; dates use YYYY-MM-DD.
type BookingInit struct {
	HotelID      int64  `json:"hotelId"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomsCount   int    `json:"roomsCount"`
}
