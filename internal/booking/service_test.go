package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// fakeRemote models one booking whose status the tests steer directly.
// It counts calls so tests can assert which operations hit the network.
type fakeRemote struct {
	status                                 string
	statusCalls, addGuests, pays, cancels  int
	initCalls, listCalls                   int
	rejectAddGuests, rejectCancel          bool
	unauthenticated                        bool
}

func (f *fakeRemote) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /bookings/init", func(w http.ResponseWriter, r *http.Request) {
		f.initCalls++
		f.status = "RESERVED"
		json.NewEncoder(w).Encode(map[string]any{"data": model.Booking{ID: 301, Status: "RESERVED"}})
	})
	mux.HandleFunc("GET /bookings/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		f.statusCalls++
		if f.unauthenticated {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"bookingStatus": f.status}})
	})
	mux.HandleFunc("POST /bookings/{id}/addGuests", func(w http.ResponseWriter, r *http.Request) {
		f.addGuests++
		if f.rejectAddGuests {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{"message": "guests already attached"})
			return
		}
		f.status = "GUESTS_ADDED"
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /bookings/{id}/payments", func(w http.ResponseWriter, r *http.Request) {
		f.pays++
		f.status = "PAYMENTS_PENDING"
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"sessionUrl": "https://pay.example/s/abc"}})
	})
	mux.HandleFunc("POST /bookings/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		f.cancels++
		if f.rejectCancel {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{"message": "too late to cancel"})
			return
		}
		f.status = "CANCELLED"
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /users/myBookings", func(w http.ResponseWriter, r *http.Request) {
		f.listCalls++
		json.NewEncoder(w).Encode(map[string]any{"data": []model.Booking{{ID: 301, Status: f.status}}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newService(t *testing.T, remote *fakeRemote) (*Service, *session.Session) {
	t.Helper()
	srv := remote.server(t)
	sess := session.New(nil)
	sess.SetToken("tok")
	api := client.New(srv.URL, sess, sess.Clear)
	return NewService(api, sess, nil), sess
}

func intPtr(v int) *int { return &v }

func validGuests() []model.GuestInput {
	return []model.GuestInput{{Name: "Ada", Gender: model.GenderFemale, Age: intPtr(31)}}
}

func TestInitValidatesLocally(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newService(t, remote)

	tests := []struct {
		name string
		req  model.BookingInit
	}{
		{"missing hotel", model.BookingInit{RoomID: 2, CheckInDate: "2026-09-01", CheckOutDate: "2026-09-03"}},
		{"missing room", model.BookingInit{HotelID: 1, CheckInDate: "2026-09-01", CheckOutDate: "2026-09-03"}},
		{"garbage check-in", model.BookingInit{HotelID: 1, RoomID: 2, CheckInDate: "tomorrow", CheckOutDate: "2026-09-03"}},
		{"checkout before checkin", model.BookingInit{HotelID: 1, RoomID: 2, CheckInDate: "2026-09-03", CheckOutDate: "2026-09-01"}},
		{"zero-night stay", model.BookingInit{HotelID: 1, RoomID: 2, CheckInDate: "2026-09-01", CheckOutDate: "2026-09-01"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Init(context.Background(), tc.req)
			assert.ErrorIs(t, err, client.ErrValidation)
		})
	}
	assert.Zero(t, remote.initCalls, "invalid requests never reach the remote")
}

func TestInitCreatesReservedBooking(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newService(t, remote)

	b, err := svc.Init(context.Background(), model.BookingInit{
		HotelID: 1, RoomID: 2,
		CheckInDate: "2026-09-01", CheckOutDate: "2026-09-03",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(301), b.ID)
	assert.Equal(t, "RESERVED", b.Status)
}

func TestAddGuestsAdvancesHint(t *testing.T) {
	remote := &fakeRemote{status: "RESERVED"}
	svc, _ := newService(t, remote)

	hint, err := svc.AddGuests(context.Background(), 301, validGuests())
	require.NoError(t, err)
	assert.Equal(t, StatusGuestsAdded, hint, "attach success echoes an optimistic status")
	assert.Equal(t, 1, remote.addGuests)

	// The authoritative status caught up, and the action flags flipped.
	st, err := svc.RefreshStatus(context.Background(), 301)
	require.NoError(t, err)
	assert.Equal(t, StatusGuestsAdded, st)
	assert.False(t, st.CanAddGuests())
	assert.True(t, st.CanPay())
}

func TestAddGuestsRefusedOutsideReserved(t *testing.T) {
	for _, status := range []string{"GUESTS_ADDED", "PAYMENTS_PENDING", "CONFIRMED", "CANCELLED"} {
		t.Run(status, func(t *testing.T) {
			remote := &fakeRemote{status: status}
			svc, _ := newService(t, remote)

			_, err := svc.AddGuests(context.Background(), 301, validGuests())
			require.ErrorIs(t, err, client.ErrConflict)
			assert.Zero(t, remote.addGuests, "refused before any remote write")
		})
	}
}

func TestAddGuestsValidatesBatchFirst(t *testing.T) {
	remote := &fakeRemote{status: "RESERVED"}
	svc, _ := newService(t, remote)

	_, err := svc.AddGuests(context.Background(), 301, nil)
	assert.ErrorIs(t, err, client.ErrValidation)
	_, err = svc.AddGuests(context.Background(), 301, []model.GuestInput{{Gender: model.GenderMale}})
	assert.ErrorIs(t, err, client.ErrValidation)
	assert.Zero(t, remote.statusCalls, "batch is validated before the status read")
}

func TestAddGuestsSurfacesRemoteRejection(t *testing.T) {
	remote := &fakeRemote{status: "RESERVED", rejectAddGuests: true}
	svc, _ := newService(t, remote)

	_, err := svc.AddGuests(context.Background(), 301, validGuests())
	require.ErrorIs(t, err, client.ErrConflict)
	assert.Contains(t, err.Error(), "guests already attached")
	assert.Equal(t, "RESERVED", remote.status, "remote state unchanged after rejection")
}

func TestInitiatePaymentReturnsRedirect(t *testing.T) {
	remote := &fakeRemote{status: "GUESTS_ADDED"}
	svc, _ := newService(t, remote)

	url, err := svc.InitiatePayment(context.Background(), 301)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/s/abc", url)
}

func TestInitiatePaymentRefusedWhenTerminal(t *testing.T) {
	remote := &fakeRemote{status: "CANCELLED"}
	svc, _ := newService(t, remote)

	_, err := svc.InitiatePayment(context.Background(), 301)
	require.ErrorIs(t, err, client.ErrConflict)
	assert.Zero(t, remote.pays)
}

func TestCancelOnlyWhenConfirmed(t *testing.T) {
	remote := &fakeRemote{status: "RESERVED"}
	svc, _ := newService(t, remote)

	err := svc.Cancel(context.Background(), 301)
	require.ErrorIs(t, err, client.ErrConflict)
	assert.Zero(t, remote.cancels)

	remote.status = "CONFIRMED"
	require.NoError(t, svc.Cancel(context.Background(), 301))
	assert.Equal(t, 1, remote.cancels)
	assert.Equal(t, "CANCELLED", remote.status)
}

func TestCancelRejectionLeavesStatus(t *testing.T) {
	remote := &fakeRemote{status: "CONFIRMED", rejectCancel: true}
	svc, _ := newService(t, remote)

	err := svc.Cancel(context.Background(), 301)
	require.ErrorIs(t, err, client.ErrConflict)

	st, err := svc.RefreshStatus(context.Background(), 301)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st, "failed cancel leaves the booking as it was")
}

func TestDetailUsesStatusEndpointAsAuthority(t *testing.T) {
	// The list record carries a stale status; the status endpoint wins.
	remote := &fakeRemote{status: "CONFIRMED"}
	srv := remote.server(t)
	sess := session.New(nil)
	sess.SetToken("tok")
	api := client.New(srv.URL, sess, sess.Clear)
	svc := NewService(api, sess, nil)

	d, err := svc.Detail(context.Background(), 301)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, d.Status)
	assert.True(t, d.CanCancel)
	assert.False(t, d.CanPay)
	require.NotNil(t, d.Booking)
	assert.Equal(t, int64(301), d.Booking.ID)
}

func TestDetailUnknownStatusDisablesAllActions(t *testing.T) {
	remote := &fakeRemote{status: "EXPIRED"}
	svc, _ := newService(t, remote)

	d, err := svc.Detail(context.Background(), 301)
	require.NoError(t, err)
	assert.False(t, d.CanAddGuests)
	assert.False(t, d.CanPay)
	assert.False(t, d.CanCancel)
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	remote := &fakeRemote{status: "RESERVED", unauthenticated: true}
	svc, sess := newService(t, remote)

	_, err := svc.RefreshStatus(context.Background(), 301)
	require.ErrorIs(t, err, client.ErrUnauthenticated)
	assert.False(t, sess.Authenticated(), "a 401 logs the session out")

	// Subsequent calls are rejected locally without touching the network.
	before := remote.statusCalls
	_, err = svc.RefreshStatus(context.Background(), 301)
	require.ErrorIs(t, err, client.ErrUnauthenticated)
	assert.Equal(t, before, remote.statusCalls)
}
