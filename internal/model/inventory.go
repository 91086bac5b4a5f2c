package model

// RoomInventoryDay is one per-date availability row for a room.  The
// identity is (room, date).  The remote service owns the invariant
// booked + reserved <= total; the client only surfaces rejections when
// an operation would violate it.
//
// Fields:
//  ID            – row identifier assigned by the service.
//  Date          – calendar date (YYYY-MM-DD).
//  BookedCount   – rooms already sold for that date.
//  ReservedCount – rooms held but not yet confirmed.
//  TotalCount    – total sellable rooms for that date.
//  Price         – unit price for that date.
//  Closed        – whether the date is closed for sale.
type RoomInventoryDay struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	BookedCount   int     `json:"bookedCount"`
	ReservedCount int     `json:"reservedCount"`
	TotalCount    int     `json:"totalCount"`
	Price         float64 `json:"price"`
	Closed        bool    `json:"closed"`
}

// InventoryRangePatch is the bulk update applied across a contiguous
// date range of one room.  It exists only as a request payload; the
// service applies it and returns nothing, so callers must re-read the
// inventory rows afterwards.
//
// Fields:
//  StartDate   – first date of the range, inclusive (YYYY-MM-DD).
//  EndDate     – last date of the range, inclusive; not before StartDate.
//  Closed      – close (true) or open (false) every date in the range.
//  SurgeFactor – positive multiplier applied to the base price.
type InventoryRangePatch struct {
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Closed      bool    `json:"closed"`
	SurgeFactor float64 `json:"surgeFactor"`
}
