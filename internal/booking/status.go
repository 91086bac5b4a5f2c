// Package booking implements the booking lifecycle: the remote-authoritative
// status model, the per-status legal-action predicates, and the operations
// that drive a booking through its states via the remote service.
package booking

// Status is a booking lifecycle state as echoed by the remote service.
// The set is open: the server may introduce states this client has never
// seen, so every predicate defaults to false for unrecognized values
// rather than erroring.  The zero value ("") behaves like any other
// unknown state.
type Status string

// Known states, in lifecycle order.  CANCELLED is terminal and reachable
// only from CONFIRMED; anything else the server reports (e.g. EXPIRED)
// is treated as unknown.
const (
	StatusReserved        Status = "RESERVED"
	StatusGuestsAdded     Status = "GUESTS_ADDED"
	StatusPaymentsPending Status = "PAYMENTS_PENDING"
	StatusConfirmed       Status = "CONFIRMED"
	StatusCancelled       Status = "CANCELLED"
)

// Known reports whether the status is one this client understands.
func (s Status) Known() bool {
	switch s {
	case StatusReserved, StatusGuestsAdded, StatusPaymentsPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further client action can ever apply.
func (s Status) Terminal() bool { return s == StatusCancelled }

// CanAddGuests reports whether the add-guests intent is legal.  Guests
// may only be attached while the booking is freshly reserved.
func (s Status) CanAddGuests() bool { return s == StatusReserved }

// CanPay reports whether a payment flow may be initiated.
func (s Status) CanPay() bool {
	switch s {
	case StatusReserved, StatusGuestsAdded, StatusPaymentsPending:
		return true
	}
	return false
}

// CanCancel reports whether the booking may be cancelled.  Only a
// confirmed booking is cancellable; everything earlier simply expires on
// the remote side.
func (s Status) CanCancel() bool { return s == StatusConfirmed }
