// Package queue publishes and consumes the storefront's broker events. The
// only event today is booking.confirmed, emitted after the reservation
// engine accepts a checkout; the consumer appends each one to
// logs/booking.log.
package queue

// BookingConfirmedEvent is published after the reservation engine confirms
// a checkout. It carries enough for downstream consumers to log, notify or
// feed analytics without calling back into the engine.
type BookingConfirmedEvent struct {
	ReservationID string  `json:"reservation_id"`
	UserID        string  `json:"user_id"`
	UserEmail     string  `json:"user_email"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	RoomIDs       []int   `json:"room_ids"`
	Rooms         int     `json:"rooms"`
	Amount        float64 `json:"amount"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
