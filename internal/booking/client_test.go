package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmSuccess(t *testing.T) {
	var got ConfirmRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Reservation/confirm-reservation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ConfirmResponse{ReservationID: "R-77", Rooms: 2, Amount: 575})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Confirm(context.Background(), ConfirmRequest{
		UserID:      "guest-1",
		UserEmail:   "g@example.com",
		CheckIn:     "2026-09-01T00:00:00Z",
		CheckOut:    "2026-09-03T00:00:00Z",
		RoomIDs:     []int{4, 9},
		CardNumber:  "4111111111111111",
		CardName:    "G Guest",
		ExpiryMonth: "09",
		ExpiryYear:  "28",
		CVV:         "123",
		TotalAmount: 575,
	})
	require.NoError(t, err)
	assert.Equal(t, "R-77", resp.ReservationID)
	assert.Equal(t, 2, resp.Rooms)
	assert.Equal(t, 575.0, resp.Amount)
	assert.Equal(t, []int{4, 9}, got.RoomIDs)
	assert.Equal(t, "guest-1", got.UserID)
}

func TestConfirmServerErrorKeptVerbatim(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bare json string", `"Room no longer available"`, "Room no longer available"},
		{"plain text", "card declined", "card declined"},
		{"empty body", "", "reservation could not be confirmed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Confirm(context.Background(), ConfirmRequest{})
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusConflict, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestReservations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Reservation/user/view-reservations", r.URL.Path)
		require.Equal(t, "guest-1", r.URL.Query().Get("userId"))
		w.Write([]byte(`[{"reservationId":"R-1","status":"Confirmed"},{"reservationId":"R-2","status":"Cancelled"}]`))
	}))
	defer srv.Close()

	out, err := NewClient(srv.URL).Reservations(context.Background(), "guest-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "R-1", out[0].ReservationID)
	assert.Equal(t, "Cancelled", out[1].Status)
}

func TestCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/Reservation/cancel-reservation", r.URL.Path)
		require.Equal(t, "R-9", r.URL.Query().Get("reservationId"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL).Cancel(context.Background(), "R-9"))
}

func TestCancelFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`"Stay already started"`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Cancel(context.Background(), "R-9")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Stay already started", apiErr.Message)
}
