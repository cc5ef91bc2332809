package checkout

import (
	"github.com/bungalowparadise/storefront/internal/model"
)

// Step is the checkout session's position in the flow. Guest-info and
// payment are freely navigable before submission; nothing talks to the
// network until the single confirmation call.
type Step string

const (
	StepGuestInfo  Step = "guest_info"
	StepPayment    Step = "payment"
	StepSubmitting Step = "submitting"
	StepComplete   Step = "complete"
)

// Session is one guest's in-progress checkout. Identity fields are sourced
// from the authenticated session and rendered read-only; the card block is
// prefilled and locked when the vault already holds an instrument.
//
// The orchestrator owns all mutation; handlers only read snapshots.
type Session struct {
	ID    string      `json:"id"`
	Guest model.Guest `json:"guest"`

	Card       *model.Card `json:"card,omitempty"`
	CardLocked bool        `json:"cardLocked"`

	Step      Step    `json:"step"`
	LastError string  `json:"lastError,omitempty"`
	Result    *Result `json:"result,omitempty"`

	submitting bool
}

// Result is the confirmation outcome retained on the session. All three
// display values come from the engine's response, not from a client-side
// recomputation.
type Result struct {
	ReservationID string  `json:"reservationId"`
	Rooms         int     `json:"rooms"`
	Amount        float64 `json:"amount"`
}

// advance moves between the two pre-submission steps. Movement is free in
// both directions until a confirmation succeeds.
func (s *Session) advance(to Step) bool {
	switch {
	case s.Step == StepComplete || s.Step == StepSubmitting:
		return false
	case to == StepGuestInfo || to == StepPayment:
		s.Step = to
		return true
	default:
		return false
	}
}
