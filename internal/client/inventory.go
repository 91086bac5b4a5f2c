package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// ListRoomInventory reads all per-date availability rows for one room.
func (c *Client) ListRoomInventory(ctx context.Context, roomID int64) ([]model.RoomInventoryDay, error) {
	var rows []model.RoomInventoryDay
	err := c.get(ctx, fmt.Sprintf("/admin/inventory/rooms/%d", roomID), &rows)
	return rows, err
}

// PatchRoomInventory applies a bulk patch across a date range of one
// room.  The endpoint returns nothing; callers must re-read the rows to
// observe the effect.
func (c *Client) PatchRoomInventory(ctx context.Context, roomID int64, patch model.InventoryRangePatch) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/inventory/rooms/%d", roomID), patch, nil)
}
