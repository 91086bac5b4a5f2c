package inventory

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking-gateway/internal/client"
	"github.com/iliyamo/hotel-booking-gateway/internal/model"
	"github.com/iliyamo/hotel-booking-gateway/internal/session"
)

// fakeRemote serves a two-day inventory and flips it to closed once a
// patch has landed, so tests can observe the mandatory re-fetch.
type fakeRemote struct {
	patches, lists int
	patchStatus    int
	patched        bool
}

func (f *fakeRemote) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/inventory/rooms/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.lists++
		rows := []model.RoomInventoryDay{
			{Date: "2026-09-01", Closed: f.patched, Price: 120},
			{Date: "2026-09-02", Closed: f.patched, Price: 120},
		}
		json.NewEncoder(w).Encode(map[string]any{"data": rows})
	})
	mux.HandleFunc("PATCH /admin/inventory/rooms/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.patches++
		if f.patchStatus != 0 {
			w.WriteHeader(f.patchStatus)
			return
		}
		f.patched = true
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newService(t *testing.T, remote *fakeRemote) *Service {
	t.Helper()
	srv := remote.server(t)
	sess := session.New(nil)
	sess.SetToken("tok")
	return NewService(client.New(srv.URL, sess, sess.Clear), sess)
}

func validPatch() model.InventoryRangePatch {
	return model.InventoryRangePatch{
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-02",
		Closed:      true,
		SurgeFactor: 1.5,
	}
}

func TestValidatePatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.InventoryRangePatch)
		ok     bool
	}{
		{"valid", func(p *model.InventoryRangePatch) {}, true},
		{"single day", func(p *model.InventoryRangePatch) { p.EndDate = p.StartDate }, true},
		{"missing start", func(p *model.InventoryRangePatch) { p.StartDate = "" }, false},
		{"missing end", func(p *model.InventoryRangePatch) { p.EndDate = "" }, false},
		{"garbage start", func(p *model.InventoryRangePatch) { p.StartDate = "Sep 1" }, false},
		{"inverted range", func(p *model.InventoryRangePatch) { p.StartDate = "2026-09-03" }, false},
		{"zero surge", func(p *model.InventoryRangePatch) { p.SurgeFactor = 0 }, false},
		{"negative surge", func(p *model.InventoryRangePatch) { p.SurgeFactor = -2 }, false},
		{"nan surge", func(p *model.InventoryRangePatch) { p.SurgeFactor = math.NaN() }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPatch()
			tc.mutate(&p)
			err := ValidatePatch(p)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, client.ErrValidation)
			}
		})
	}
}

func TestApplyRangePatchRefetchesOnSuccess(t *testing.T) {
	remote := &fakeRemote{}
	svc := newService(t, remote)

	rows, err := svc.ApplyRangePatch(context.Background(), 12, validPatch())
	require.NoError(t, err)
	assert.Equal(t, 1, remote.patches)
	assert.Equal(t, 1, remote.lists, "success must be followed by a re-read")
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Closed, "returned rows reflect the applied patch")
	assert.True(t, rows[1].Closed)
}

func TestApplyRangePatchSkipsRefetchOnFailure(t *testing.T) {
	remote := &fakeRemote{patchStatus: http.StatusBadGateway}
	svc := newService(t, remote)

	rows, err := svc.ApplyRangePatch(context.Background(), 12, validPatch())
	require.ErrorIs(t, err, client.ErrRemoteUnavailable)
	assert.Nil(t, rows)
	assert.Equal(t, 1, remote.patches)
	assert.Zero(t, remote.lists, "no re-read after a failed patch")
}

func TestApplyRangePatchRejectsLocallyWithoutNetwork(t *testing.T) {
	remote := &fakeRemote{}
	svc := newService(t, remote)

	p := validPatch()
	p.SurgeFactor = 0
	_, err := svc.ApplyRangePatch(context.Background(), 12, p)
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Zero(t, remote.patches, "invalid patch never reaches the remote")
	assert.Zero(t, remote.lists)
}

func TestListRequiresSession(t *testing.T) {
	remote := &fakeRemote{}
	srv := remote.server(t)
	sess := session.New(nil)
	svc := NewService(client.New(srv.URL, sess, sess.Clear), sess)

	_, err := svc.List(context.Background(), 12)
	assert.ErrorIs(t, err, client.ErrUnauthenticated)
	assert.Zero(t, remote.lists)
}
