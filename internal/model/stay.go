package model

import (
	"math"
	"time"
)

// StayWindow is a check-in/check-out date pair. All items in a cart share a
// single window: the storefront sells one trip at a time. The window is
// half-open — the check-out day itself is free for the next guest.
//
// Fields:
//  CheckIn  – first night of the stay.
//  CheckOut – morning of departure (must be after CheckIn).
type StayWindow struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// Valid reports whether the window is well formed, i.e. check-out strictly
// follows check-in.
func (w StayWindow) Valid() bool {
	return w.CheckOut.After(w.CheckIn)
}

// Nights returns the number of nights covered by the window. Partial days
// round up so that any positive duration counts as at least one night.
func (w StayWindow) Nights() int {
	d := w.CheckOut.Sub(w.CheckIn)
	return int(math.Ceil(d.Hours() / 24))
}

// SameDays compares two windows at day granularity. Time-of-day is not
// load-bearing anywhere in the booking flow, so two windows match when
// their check-in days and check-out days are equal.
func (w StayWindow) SameDays(other StayWindow) bool {
	return sameDay(w.CheckIn, other.CheckIn) && sameDay(w.CheckOut, other.CheckOut)
}

// sameDay reports whether two instants fall on the same calendar day in UTC.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DateRange is a reserved [CheckIn, CheckOut) interval attached to a room by
// the catalog. Ranges may arrive unsorted and may be empty.
type DateRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}
