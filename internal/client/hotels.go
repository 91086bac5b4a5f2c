package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/paging"
)

// SearchHotels runs the paged hotel search.  The raw page is returned
// unnormalized; the paging package owns the conversion to the canonical
// shape because the endpoint answers with two different envelope
// variants depending on the service version.
func (c *Client) SearchHotels(ctx context.Context, city string, roomsCount, page, size int) (paging.RawPage[model.HotelPrice], error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("roomsCount", fmt.Sprint(roomsCount))
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	var raw paging.RawPage[model.HotelPrice]
	if err := c.get(ctx, "/hotels/search?"+q.Encode(), &raw); err != nil {
		return paging.RawPage[model.HotelPrice]{}, err
	}
	return raw, nil
}

// HotelInfo fetches the public detail projection of one hotel.
func (c *Client) HotelInfo(ctx context.Context, hotelID int64) (model.HotelInfo, error) {
	var info model.HotelInfo
	err := c.get(ctx, fmt.Sprintf("/hotels/%d/info", hotelID), &info)
	return info, err
}
