package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/room", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"name":"Lagoon Bungalow","price":200,"type":"Suite",
			 "reservedDateRanges":[{"checkIn":"2026-09-01T00:00:00Z","checkOut":"2026-09-04T00:00:00Z"}]},
			{"id":2,"name":"Garden Room","price":120,"type":"Standard"}
		]`))
	}))
	defer srv.Close()

	rooms, err := NewClient(srv.URL).Rooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Lagoon Bungalow", rooms[0].Name)
	require.Len(t, rooms[0].ReservedDateRanges, 1)
	assert.Empty(t, rooms[1].ReservedDateRanges)
}

func TestRoomsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Rooms(context.Background())
	assert.Error(t, err)
}
