// Package queue defines message payloads exchanged over the message broker
// and a best-effort publisher for them.
package queue

// BookingCancelledEvent is published when a cancellation is confirmed by
// the remote service.  It contains enough information for downstream
// consumers to log, notify, or trigger analytics without calling the
// booking service again.
type BookingCancelledEvent struct {
	EventID     string `json:"event_id"`
	BookingID   int64  `json:"booking_id"`
	CancelledAt string `json:"cancelled_at"`
}

// PaymentInitiatedEvent is published when a payment redirect handle has
// been obtained for a booking.  The eventual CONFIRMED transition is
// asynchronous on the remote side and not represented here.
type PaymentInitiatedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   int64  `json:"booking_id"`
	SessionURL  string `json:"session_url"`
	InitiatedAt string `json:"initiated_at"`
}
