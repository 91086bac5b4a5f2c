package model

// Hotel is a hotel record as returned by both the public search and the
// admin endpoints.  Name and City are pointers because the search
// projection may omit them.
type Hotel struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name,omitempty"`
	City   *string `json:"city,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// HotelPrice pairs a hotel with its average nightly price for the
// searched period.  This is the element type of search result pages.
type HotelPrice struct {
	Hotel Hotel   `json:"hotel"`
	Price float64 `json:"price"`
}

// HotelInfo is the public hotel detail projection: the hotel itself plus
// its bookable rooms.
type HotelInfo struct {
	Hotel Hotel  `json:"hotel"`
	Rooms []Room `json:"rooms"`
}

// Room describes one room type of a hotel.  TotalCount and Capacity are
// pointers because the public projection omits them.
type Room struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	BasePrice  float64 `json:"basePrice"`
	TotalCount *int    `json:"totalCount,omitempty"`
	Capacity   *int    `json:"capacity,omitempty"`
}

// RoomInput is the write-side payload for creating or updating a room
// through the admin endpoints.
type RoomInput struct {
	Type       string  `json:"type"`
	BasePrice  float64 `json:"basePrice"`
	TotalCount int     `json:"totalCount"`
	Capacity   int     `json:"capacity"`
}

// HotelInput is the write-side payload for creating or updating a hotel.
type HotelInput struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// HotelReport aggregates booking figures for one hotel.  Served by the
// admin reports endpoint; treated as best-effort informational data.
type HotelReport struct {
	BookingCount int64   `json:"bookingCount"`
	TotalRevenue float64 `json:"totalRevenue"`
	AvgRevenue   float64 `json:"avgRevenue"`
}
