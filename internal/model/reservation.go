package model

import "time"

// Reservation status values as reported by the booking engine.
const (
	ReservationConfirmed = "Confirmed"
	ReservationCancelled = "Cancelled"
	ReservationCompleted = "Completed"
)

// ReservedRoom is the per-room summary carried inside a reservation.
type ReservedRoom struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Reservation is the server-owned record created by a successful
// confirmation call. The storefront never assigns the identifier or the
// final amount; both come back from the booking engine.
//
// Fields:
//  ReservationID  – identifier assigned by the booking engine.
//  Rooms          – ordered room summaries.
//  CheckIn        – first night of the stay.
//  CheckOut       – morning of departure.
//  NumberOfGuests – guest count recorded at confirmation.
//  TotalPrice     – authoritative charged amount.
//  Status         – Confirmed, Cancelled or Completed.
//  Location       – property location label for display.
type Reservation struct {
	ReservationID  string         `json:"reservationId"`
	Rooms          []ReservedRoom `json:"rooms"`
	CheckIn        time.Time      `json:"checkIn"`
	CheckOut       time.Time      `json:"checkOut"`
	NumberOfGuests int            `json:"numberOfGuests"`
	TotalPrice     float64        `json:"totalPrice"`
	Status         string         `json:"status"`
	Location       string         `json:"location"`
}

// CancellableNow reports whether the reservation may still be cancelled
// online: only confirmed stays that have not yet begun qualify.
func (r Reservation) CancellableNow(now time.Time) bool {
	return r.Status == ReservationConfirmed && r.CheckIn.After(now)
}
