package handlers

import (
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRidesCachesResults(t *testing.T) {
	var searches int32
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/trips/search":
			atomic.AddInt32(&searches, 1)
			assert.Equal(t, "Lagos", r.URL.Query().Get("origin"))
			w.Write([]byte(`[{"id":"t1","origin":"Lagos","destination":"Abuja"}]`))
		default:
			http.NotFound(w, r)
		}
	})
	h, store := newApp(t, backend)
	signIn(t, store)

	rec := perform(h.SearchRides, http.MethodGet, "/rides/search", "/rides/search?origin=Lagos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&searches))

	// the listing now serves the cached search without hitting the API
	rec = perform(h.ListRides, http.MethodGet, "/rides", "/rides", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cached":true`)
	assert.Contains(t, rec.Body.String(), `"t1"`)

	// clearing falls back to the full listing
	rec = perform(h.ClearRideSearch, http.MethodDelete, "/rides/search", "/rides/search", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, _, ok := h.SearchCache.Get()
	assert.False(t, ok)
}

func TestRideDetailMembership(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/trips/t1":
			w.Write([]byte(`{"id":"t1","origin":"Lagos","destination":"Abuja","memberIds":["u1","u2"]}`))
		case "/trips/t1/seats":
			w.Write([]byte(`[{"seat_number":"1","is_available":false},{"seat_number":"2","is_available":true}]`))
		default:
			http.NotFound(w, r)
		}
	})
	h, store := newApp(t, backend)
	signIn(t, store)

	rec := perform(h.RideDetail, http.MethodGet, "/rides/:id", "/rides/t1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_member":true`)
	assert.Contains(t, rec.Body.String(), `"seat_number":"2"`)
}

func TestJoinRideSignedOutRedirects(t *testing.T) {
	var calls int32
	h, _ := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	rec := perform(h.JoinRide, http.MethodPost, "/rides/:id/join", "/rides/t1/join", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestJoinRideStartsPayment(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/payments/join-trip" && r.Method == http.MethodPost {
			w.Write([]byte(`{"authorization_url":"https://checkout.paystack.com/x1","reference":"ODYSS-JOIN-9"}`))
			return
		}
		http.NotFound(w, r)
	})
	h, store := newApp(t, backend)
	signIn(t, store)

	rec := perform(h.JoinRide, http.MethodPost, "/rides/:id/join", "/rides/t1/join", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://checkout.paystack.com/x1")
	assert.Contains(t, rec.Body.String(), "ODYSS-JOIN-9")
}

func TestListRidesWithoutCache(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/trips/" {
			w.Write([]byte(`{"trips":[{"id":"t1"},{"id":"t2"}]}`))
			return
		}
		http.NotFound(w, r)
	})
	h, store := newApp(t, backend)
	signIn(t, store)

	rec := perform(h.ListRides, http.MethodGet, "/rides", "/rides", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cached":false`)
	assert.Contains(t, rec.Body.String(), `"t2"`)
}
