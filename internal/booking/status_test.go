package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusPredicates(t *testing.T) {
	cases := []struct {
		status       Status
		canAddGuests bool
		canPay       bool
		canCancel    bool
	}{
		{StatusReserved, true, true, false},
		{StatusGuestsAdded, false, true, false},
		{StatusPaymentsPending, false, true, false},
		{StatusConfirmed, false, false, true},
		{StatusCancelled, false, false, false},
		// Unknown and future remote states enable nothing.
		{"", false, false, false},
		{"EXPIRED", false, false, false},
		{"SOMETHING_NEW", false, false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.canAddGuests, tc.status.CanAddGuests(), "CanAddGuests")
			assert.Equal(t, tc.canPay, tc.status.CanPay(), "CanPay")
			assert.Equal(t, tc.canCancel, tc.status.CanCancel(), "CanCancel")
		})
	}
}

func TestStatusKnown(t *testing.T) {
	for _, s := range []Status{StatusReserved, StatusGuestsAdded, StatusPaymentsPending, StatusConfirmed, StatusCancelled} {
		assert.True(t, s.Known(), "%s should be known", s)
	}
	for _, s := range []Status{"", "EXPIRED", "reserved"} {
		assert.False(t, s.Known(), "%q should be unknown", s)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, Status("EXPIRED").Terminal())
}
