// Package availability decides whether a room can be booked for a candidate
// stay window. Everything here is pure: no clock, no network, no state.
package availability

import "github.com/bungalowparadise/storefront/internal/model"

// IsAvailable reports whether a stay window conflicts with none of the
// room's reserved ranges. Both the stay and the reserved ranges are
// half-open [checkIn, checkOut) intervals, so a stay beginning on the day an
// existing reservation checks out does not conflict. An empty range list
// means the catalog published no reservation data for the room and the room
// is treated as unconditionally available.
func IsAvailable(stay model.StayWindow, reserved []model.DateRange) bool {
	for _, r := range reserved {
		// Overlap unless the stay ends on/before the reservation starts or
		// starts on/after it ends.
		if stay.CheckOut.After(r.CheckIn) && stay.CheckIn.Before(r.CheckOut) {
			return false
		}
	}
	return true
}

// Filter is the room-browse search criteria. MinPrice/MaxPrice bound the
// nightly price inclusively; Type narrows to a single room type unless set
// to "All"; Stay, when non-nil, additionally requires availability.
type Filter struct {
	MinPrice float64
	MaxPrice float64
	Type     string
	Stay     *model.StayWindow
}

// TypeAll disables type narrowing.
const TypeAll = "All"

// Matches applies the filter to a single room. The three predicates are
// pure, so evaluation order carries no meaning.
func (f Filter) Matches(room model.Room) bool {
	if room.Price < f.MinPrice || room.Price > f.MaxPrice {
		return false
	}
	if f.Type != "" && f.Type != TypeAll && room.Type != f.Type {
		return false
	}
	if f.Stay != nil && !IsAvailable(*f.Stay, room.ReservedDateRanges) {
		return false
	}
	return true
}

// Apply returns the rooms matching the filter, preserving catalog order.
func (f Filter) Apply(rooms []model.Room) []model.Room {
	out := make([]model.Room, 0, len(rooms))
	for _, r := range rooms {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
