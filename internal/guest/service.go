// Package guest implements the roster reconciler: it decides whether a
// guest-edit intent becomes a remote create or update, and keeps the
// caller's view of the roster aligned with the remote service, which is
// the single source of truth.  The reconciler holds no cache of its own;
// after every mutation the roster is re-fetched rather than patched
// locally, so divergence cannot accumulate.
package guest

import (
	"context"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// Age bounds accepted on the write path.
const (
	minAge = 1
	maxAge = 120
)

// ValidateInput checks one guest payload before dispatch.  Name is
// required, gender must be one of the closed set, and age, when given,
// must fall within the accepted bounds.
func ValidateInput(in model.GuestInput) error {
	if in.Name == "" {
		return client.NewValidationError("guest name is required")
	}
	switch in.Gender {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
	default:
		return client.NewValidationError("invalid gender %q", in.Gender)
	}
	if in.Age != nil && (*in.Age < minAge || *in.Age > maxAge) {
		return client.NewValidationError("age must be between %d and %d", minAge, maxAge)
	}
	return nil
}

// ValidateBatch checks a non-empty guest batch.
func ValidateBatch(batch []model.GuestInput) error {
	if len(batch) == 0 {
		return client.NewValidationError("at least one guest is required")
	}
	for _, in := range batch {
		if err := ValidateInput(in); err != nil {
			return err
		}
	}
	return nil
}

// Service exposes the roster operations to the handler layer.
type Service struct {
	api  *client.Client
	sess *session.Session
}

// NewService constructs the roster service.
func NewService(api *client.Client, sess *session.Session) *Service {
	return &Service{api: api, sess: sess}
}

func (s *Service) requireAuth() error {
	if !s.sess.Authenticated() {
		return client.NewUnauthenticatedError()
	}
	return nil
}

// List returns the user's saved guests.
func (s *Service) List(ctx context.Context) ([]model.Guest, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	return s.api.ListRosterGuests(ctx)
}

// Upsert dispatches a guest edit: existingID zero issues a create and
// returns the newly assigned id, non-zero issues an update to that id
// and returns it unchanged.  Either way the roster is re-fetched after
// the mutation and returned alongside the id.
func (s *Service) Upsert(ctx context.Context, existingID int64, in model.GuestInput) (int64, []model.Guest, error) {
	if err := s.requireAuth(); err != nil {
		return 0, nil, err
	}
	if err := ValidateInput(in); err != nil {
		return 0, nil, err
	}
	id := existingID
	if id == 0 {
		created, err := s.api.CreateRosterGuest(ctx, in)
		if err != nil {
			return 0, nil, err
		}
		id = created.ID
	} else {
		if err := s.api.UpdateRosterGuest(ctx, id, in); err != nil {
			return 0, nil, err
		}
	}
	roster, err := s.api.ListRosterGuests(ctx)
	if err != nil {
		return id, nil, err
	}
	return id, roster, nil
}

// Remove deletes a roster guest and returns the refreshed roster.  No
// local precondition is checked: the gateway has no visibility into
// other bookings' usage of the guest, so a guest still required by an
// in-progress booking is rejected by the remote service and that
// rejection is surfaced verbatim.
func (s *Service) Remove(ctx context.Context, guestID int64) ([]model.Guest, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if err := s.api.DeleteRosterGuest(ctx, guestID); err != nil {
		return nil, err
	}
	return s.api.ListRosterGuests(ctx)
}
