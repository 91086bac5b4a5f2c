package booking

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/guest"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/queue"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

const dateLayout = "2006-01-02"

// Service drives bookings through their lifecycle against the remote
// service.  Every mutating operation re-reads the authoritative status
// first and refuses illegal actions before any remote write is
// dispatched; local state is never advanced ahead of remote
// confirmation, so a failed call leaves nothing half-applied.
type Service struct {
	api    *client.Client
	sess   *session.Session
	events *queue.Publisher
}

// NewService constructs the booking service.  events may be nil when no
// broker is configured; lifecycle events are then skipped.
func NewService(api *client.Client, sess *session.Session, events *queue.Publisher) *Service {
	return &Service{api: api, sess: sess, events: events}
}

func (s *Service) requireAuth() error {
	if !s.sess.Authenticated() {
		return client.NewUnauthenticatedError()
	}
	return nil
}

// Detail is the booking projection served to the UI: the record from
// the user's booking list (when present), the authoritative status, and
// the resulting legal-action flags.
type Detail struct {
	Booking      *model.Booking `json:"booking,omitempty"`
	Status       Status         `json:"status"`
	CanAddGuests bool           `json:"canAddGuests"`
	CanPay       bool           `json:"canPay"`
	CanCancel    bool           `json:"canCancel"`
}

// Init creates a new booking.  Dates must be calendar dates with
// check-in strictly before check-out; violations are rejected locally.
func (s *Service) Init(ctx context.Context, req model.BookingInit) (model.Booking, error) {
	if err := s.requireAuth(); err != nil {
		return model.Booking{}, err
	}
	if req.HotelID <= 0 || req.RoomID <= 0 {
		return model.Booking{}, client.NewValidationError("hotel and room are required")
	}
	in, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return model.Booking{}, client.NewValidationError("invalid check-in date %q", req.CheckInDate)
	}
	out, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return model.Booking{}, client.NewValidationError("invalid check-out date %q", req.CheckOutDate)
	}
	if !in.Before(out) {
		return model.Booking{}, client.NewValidationError("check-in must be before check-out")
	}
	if req.RoomsCount < 1 {
		req.RoomsCount = 1
	}
	return s.api.InitBooking(ctx, req)
}

// Detail assembles the booking view.  The status endpoint is the
// authority; the record from the booking list is display data and its
// embedded status only serves as a fallback when the status fetch
// fails.
func (s *Service) Detail(ctx context.Context, bookingID int64) (Detail, error) {
	if err := s.requireAuth(); err != nil {
		return Detail{}, err
	}
	status, statusErr := s.api.BookingStatus(ctx, bookingID)

	var found *model.Booking
	list, listErr := s.api.MyBookings(ctx)
	if listErr == nil {
		for i := range list {
			if list[i].ID == bookingID {
				found = &list[i]
				break
			}
		}
	}
	if statusErr != nil {
		if found == nil {
			return Detail{}, statusErr
		}
		status = found.Status
	}
	return describe(Status(status), found), nil
}

func describe(st Status, b *model.Booking) Detail {
	return Detail{
		Booking:      b,
		Status:       st,
		CanAddGuests: st.CanAddGuests(),
		CanPay:       st.CanPay(),
		CanCancel:    st.CanCancel(),
	}
}

// RefreshStatus re-reads the authoritative status.  It is idempotent
// and safe to call at any time; several transitions (notably payment
// confirmation) happen asynchronously and only become visible here.
func (s *Service) RefreshStatus(ctx context.Context, bookingID int64) (Status, error) {
	if err := s.requireAuth(); err != nil {
		return "", err
	}
	raw, err := s.api.BookingStatus(ctx, bookingID)
	if err != nil {
		return "", err
	}
	return Status(raw), nil
}

// AddGuests attaches a guest batch to the booking.  The batch is atomic
// from this client's perspective.  On success the returned status is
// GUESTS_ADDED: an optimistic echo, because the attach call does not
// report the new status itself.  Callers should treat it as a display
// hint and re-run RefreshStatus for ground truth.
func (s *Service) AddGuests(ctx context.Context, bookingID int64, guests []model.GuestInput) (Status, error) {
	if err := s.requireAuth(); err != nil {
		return "", err
	}
	if err := guest.ValidateBatch(guests); err != nil {
		return "", err
	}
	current, err := s.RefreshStatus(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if !current.CanAddGuests() {
		return "", client.NewConflictError("booking status %s does not allow adding guests", displayStatus(current))
	}
	if err := s.api.AddBookingGuests(ctx, bookingID, guests); err != nil {
		return "", err
	}
	return StatusGuestsAdded, nil
}

// InitiatePayment starts a payment flow and returns the provider
// redirect URL.  The booking's status is not advanced locally: the real
// transition to CONFIRMED happens asynchronously on the remote side and
// is only observed on the next RefreshStatus.
func (s *Service) InitiatePayment(ctx context.Context, bookingID int64) (string, error) {
	if err := s.requireAuth(); err != nil {
		return "", err
	}
	current, err := s.RefreshStatus(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if !current.CanPay() {
		return "", client.NewConflictError("booking status %s does not allow payment", displayStatus(current))
	}
	url, err := s.api.InitiatePayment(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if s.events != nil {
		_ = s.events.PaymentInitiated(ctx, bookingID, url)
	}
	return url, nil
}

// Cancel cancels a confirmed booking.  On success the booking is marked
// cancelled and should disappear from any active-bookings view; on
// failure nothing changes locally.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	current, err := s.RefreshStatus(ctx, bookingID)
	if err != nil {
		return err
	}
	if !current.CanCancel() {
		return client.NewConflictError("booking status %s does not allow cancellation", displayStatus(current))
	}
	if err := s.api.CancelBooking(ctx, bookingID); err != nil {
		return err
	}
	if s.events != nil {
		_ = s.events.BookingCancelled(ctx, bookingID)
	}
	return nil
}

// MyBookings lists the user's bookings.
func (s *Service) MyBookings(ctx context.Context) ([]model.Booking, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	return s.api.MyBookings(ctx)
}

func displayStatus(st Status) string {
	if st == "" {
		return "(none)"
	}
	return string(st)
}
