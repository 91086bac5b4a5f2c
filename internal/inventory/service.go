// Package inventory implements the date-range inventory updater for the
// admin surface.  A patch (closed flag plus surge multiplier) is applied
// across a contiguous range in one bulk remote call, then the room's
// rows are re-read, because the patch endpoint itself returns nothing.
package inventory

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

const dateLayout = "2006-01-02"

// Service exposes inventory reads and range patches to the handler layer.
type Service struct {
	api  *client.Client
	sess *session.Session
}

// NewService constructs the inventory service.
func NewService(api *client.Client, sess *session.Session) *Service {
	return &Service{api: api, sess: sess}
}

func (s *Service) requireAuth() error {
	if !s.sess.Authenticated() {
		return client.NewUnauthenticatedError()
	}
	return nil
}

// List reads all per-date rows for one room.
func (s *Service) List(ctx context.Context, roomID int64) ([]model.RoomInventoryDay, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	return s.api.ListRoomInventory(ctx, roomID)
}

// ValidatePatch checks a range patch before dispatch.  This is the one
// place where client-side validation is load-bearing: a zero or
// negative surge factor would silently zero out or invert pricing, so
// it must never reach the remote service.  The comparison is written so
// that a NaN smuggled in through JSON also fails.
func ValidatePatch(patch model.InventoryRangePatch) error {
	if patch.StartDate == "" || patch.EndDate == "" {
		return client.NewValidationError("start and end dates are required")
	}
	start, err := time.Parse(dateLayout, patch.StartDate)
	if err != nil {
		return client.NewValidationError("invalid start date %q", patch.StartDate)
	}
	end, err := time.Parse(dateLayout, patch.EndDate)
	if err != nil {
		return client.NewValidationError("invalid end date %q", patch.EndDate)
	}
	if start.After(end) {
		return client.NewValidationError("start date must not be after end date")
	}
	if !(patch.SurgeFactor > 0) {
		return client.NewValidationError("surge factor must be positive")
	}
	return nil
}

// ApplyRangePatch validates the patch, applies it in one bulk call and
// re-fetches the room's rows.  The refreshed rows are returned so the
// caller never renders stale data after a successful patch.  If the
// remote call fails, none of the range is assumed changed and no
// re-fetch happens: the caller keeps its last-known rows instead of
// risking a false "unchanged" display after a real partial failure.
func (s *Service) ApplyRangePatch(ctx context.Context, roomID int64, patch model.InventoryRangePatch) ([]model.RoomInventoryDay, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if err := ValidatePatch(patch); err != nil {
		return nil, err
	}
	if err := s.api.PatchRoomInventory(ctx, roomID, patch); err != nil {
		return nil, err
	}
	return s.api.ListRoomInventory(ctx, roomID)
}
