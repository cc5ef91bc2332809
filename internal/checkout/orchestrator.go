// Package checkout reconciles the cart with a guest identity and a payment
// instrument, and turns them into exactly one server-confirmed reservation
// per submission.
package checkout

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bungalowparadise/storefront/internal/booking"
	"github.com/bungalowparadise/storefront/internal/cart"
	"github.com/bungalowparadise/storefront/internal/model"
	"github.com/bungalowparadise/storefront/internal/payment"
	"github.com/bungalowparadise/storefront/internal/queue"
)

// Sentinel errors surfaced to handlers.
var (
	// ErrEmptyCart short-circuits checkout entry: the empty-cart state is
	// rendered without any network call.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrSessionNotFound means the session id is unknown or expired.
	ErrSessionNotFound = errors.New("checkout: session not found")
	// ErrInFlight rejects a second confirmation while one is outstanding.
	ErrInFlight = errors.New("checkout: confirmation already in progress")
)

// ValidationError is a local precondition failure. It never reaches the
// network and does not mutate the cart.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// EventPublisher emits the booking.confirmed event after a successful
// confirmation. Publish failures are logged, never propagated: the
// reservation already exists server-side.
type EventPublisher func(ctx context.Context, ev queue.BookingConfirmedEvent) error

// Orchestrator drives checkout sessions. It is constructed once and
// injected into the checkout handlers.
type Orchestrator struct {
	cart   *cart.Store
	engine booking.Engine
	vault  payment.Vault
	events EventPublisher

	mu       sync.Mutex
	sessions map[string]*Session
}

// New returns an Orchestrator. events may be nil when no broker is
// configured.
func New(cartStore *cart.Store, engine booking.Engine, vault payment.Vault, events EventPublisher) *Orchestrator {
	return &Orchestrator{
		cart:     cartStore,
		engine:   engine,
		vault:    vault,
		events:   events,
		sessions: make(map[string]*Session),
	}
}

// Begin opens a checkout session for the guest. An empty cart fails with
// ErrEmptyCart before anything else happens. Card resolution runs once
// here: a stored instrument prefills the card block and locks it
// (display-only, replacing a card lives on the payment-methods screen);
// lookup misses of any kind leave the block editable for first-time entry.
func (o *Orchestrator) Begin(ctx context.Context, guest model.Guest) (*Session, error) {
	if len(o.cart.Items(ctx, guest.ID)) == 0 {
		return nil, ErrEmptyCart
	}

	sess := &Session{
		ID:    uuid.NewString(),
		Guest: guest,
		Step:  StepGuestInfo,
	}
	if card, err := o.vault.UserCard(ctx, guest.ID, false); err == nil {
		sess.Card = card
		sess.CardLocked = true
	} else if !errors.Is(err, payment.ErrCardNotFound) {
		// Lookup failures degrade to the editable form, same as not-found.
		log.Printf("checkout: card lookup for %s: %v", guest.ID, err)
	}

	o.mu.Lock()
	o.sessions[sess.ID] = sess
	o.mu.Unlock()
	return sess, nil
}

// Session returns a snapshot of the session, or ErrSessionNotFound.
func (o *Orchestrator) Session(id string) (*Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	sess, ok := o.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	snap := *sess
	return &snap, nil
}

// Advance moves the session between the guest-info and payment steps.
func (o *Orchestrator) Advance(id string, to Step) (*Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	sess, ok := o.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !sess.advance(to) {
		return nil, &ValidationError{Message: "cannot navigate to " + string(to) + " now"}
	}
	snap := *sess
	return &snap, nil
}

// ConfirmInput is the submission payload. Card fields are ignored when the
// session's card block is locked. GuestCount and PolicyAcknowledged are
// optional in the flow; their guards apply only when present.
type ConfirmInput struct {
	CardNumber  string `json:"cardNumber"`
	CardName    string `json:"cardName"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`

	GuestCount         *int  `json:"guestCount,omitempty"`
	PolicyAcknowledged *bool `json:"policyAcknowledged,omitempty"`
}

// Confirm runs the local guards and then issues the single confirmation
// call. On success the engine's reservation id, room count and amount are
// captured, the cart is cleared and the session completes. On failure the
// cart is untouched, the server's error text is kept verbatim on the
// session and the guest may resubmit. A concurrent second call fails with
// ErrInFlight.
func (o *Orchestrator) Confirm(ctx context.Context, id string, input ConfirmInput) (*Session, error) {
	o.mu.Lock()
	sess, ok := o.sessions[id]
	if !ok {
		o.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if sess.submitting {
		o.mu.Unlock()
		return nil, ErrInFlight
	}
	if sess.Step == StepComplete {
		o.mu.Unlock()
		return nil, &ValidationError{Message: "this checkout has already completed"}
	}

	items := o.cart.Items(ctx, sess.Guest.ID)
	if len(items) == 0 {
		o.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if err := validateGuards(items, input); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	card := resolveCard(sess, input)
	if err := validateCard(card); err != nil {
		o.mu.Unlock()
		return nil, err
	}

	sess.submitting = true
	sess.Step = StepSubmitting
	sess.LastError = ""
	o.mu.Unlock()

	totals := ComputeTotals(items)
	req := booking.ConfirmRequest{
		UserID:    sess.Guest.ID,
		UserEmail: sess.Guest.Email,
		// All items share one window by construction; the first item is
		// the cart's authority on the stay dates.
		CheckIn:     items[0].CheckIn.UTC().Format(time.RFC3339),
		CheckOut:    items[0].CheckOut.UTC().Format(time.RFC3339),
		RoomIDs:     roomIDs(items),
		CardNumber:  card.CardNumber,
		CardName:    card.CardHolder,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		CVV:         card.CVV,
		TotalAmount: totals.GrandTotal,
	}
	if input.GuestCount != nil {
		req.GuestCount = *input.GuestCount
	}

	resp, err := o.engine.Confirm(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	sess.submitting = false
	if err != nil {
		sess.Step = StepPayment
		sess.LastError = failureText(err)
		snap := *sess
		return &snap, nil
	}

	sess.Step = StepComplete
	sess.Result = &Result{
		ReservationID: resp.ReservationID,
		Rooms:         resp.Rooms,
		Amount:        resp.Amount,
	}
	o.cart.ClearCart(ctx, sess.Guest.ID)
	o.publishConfirmed(ctx, sess, req, resp)
	snap := *sess
	return &snap, nil
}

// validateGuards applies the optional local preconditions: a supplied guest
// count must fit the combined room capacity, and a supplied policy
// acknowledgment must be checked.
func validateGuards(items []model.CartItem, input ConfirmInput) error {
	if input.GuestCount != nil {
		capacity := 0
		for _, it := range items {
			capacity += it.GuestsPerRoom
		}
		if *input.GuestCount < 1 || *input.GuestCount > capacity {
			return &ValidationError{
				Message: "guest count must be between 1 and the capacity of the selected rooms",
			}
		}
	}
	if input.PolicyAcknowledged != nil && !*input.PolicyAcknowledged {
		return &ValidationError{
			Message: "please accept the reservation policy before confirming",
		}
	}
	return nil
}

// resolveCard picks the instrument for the submission: the locked stored
// card when one was found at entry, otherwise the guest's typed fields.
func resolveCard(sess *Session, input ConfirmInput) model.Card {
	if sess.CardLocked && sess.Card != nil {
		return *sess.Card
	}
	return model.Card{
		CardNumber:  input.CardNumber,
		CardHolder:  input.CardName,
		ExpiryMonth: input.ExpiryMonth,
		ExpiryYear:  input.ExpiryYear,
		CVV:         input.CVV,
	}
}

func validateCard(card model.Card) error {
	if card.CardNumber == "" || card.CardHolder == "" ||
		card.ExpiryMonth == "" || card.ExpiryYear == "" || card.CVV == "" {
		return &ValidationError{Message: "all card fields are required"}
	}
	return nil
}

// failureText maps a confirmation failure to the user-visible reason. The
// engine's own error payload passes through verbatim; transport failures
// fall back to a generic line.
func failureText(err error) string {
	var apiErr *booking.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	log.Printf("checkout: confirmation transport failure: %v", err)
	return "the reservation service is unreachable, please try again"
}

func roomIDs(items []model.CartItem) []int {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// publishConfirmed emits the booking.confirmed event. Best-effort only.
func (o *Orchestrator) publishConfirmed(ctx context.Context, sess *Session, req booking.ConfirmRequest, resp *booking.ConfirmResponse) {
	if o.events == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		ReservationID: resp.ReservationID,
		UserID:        sess.Guest.ID,
		UserEmail:     sess.Guest.Email,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		RoomIDs:       req.RoomIDs,
		Rooms:         resp.Rooms,
		Amount:        resp.Amount,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := o.events(ctx, ev); err != nil {
		log.Printf("checkout: publish booking.confirmed: %v", err)
	}
}
