package cart

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/bungalowparadise/storefront/internal/model"
)

// AddResult carries the outcome of an add attempt. Rejections are ordinary
// results, never errors: callers surface Message as user feedback and can
// invoke AddToCart unconditionally.
type AddResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Rejection messages returned by AddToCart.
const (
	msgAlreadyInCart = "This room is already in your cart."
	msgDatesMismatch = "All rooms must share the same check-in and check-out dates. " +
		"Empty your cart or pick the matching dates."
	msgAdded = "Room added to your cart."
)

// Store is the single source of truth for what each guest intends to book.
// It enforces the one-trip-per-cart invariant (every item shares one stay
// window, no duplicate rooms) and keeps carts durable through Storage.
//
// A guest's cart is hydrated from storage exactly once, on first access;
// until that read has happened nothing is ever written back, so a fresh
// session can never clobber a previously saved cart with an empty one.
// Mutations are serialized by the store's mutex.
type Store struct {
	storage Storage

	mu    sync.Mutex
	carts map[string]*guestCart
}

// guestCart is the in-memory state for one guest. hydrated flips to true
// after the stored record has been read (or found absent/corrupt).
type guestCart struct {
	items    []model.CartItem
	hydrated bool
}

// NewStore returns a Store backed by the given storage. One Store is
// constructed per application session and injected into every view that
// touches the cart.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage, carts: make(map[string]*guestCart)}
}

// hydrate loads the guest's persisted cart on first access. A missing
// record means an empty cart; a corrupt record degrades to an empty cart
// with a log line, never an error to the caller. Must be called with the
// mutex held.
func (s *Store) hydrate(ctx context.Context, userID string) *guestCart {
	gc, ok := s.carts[userID]
	if !ok {
		gc = &guestCart{}
		s.carts[userID] = gc
	}
	if gc.hydrated {
		return gc
	}
	data, err := s.storage.Load(ctx, Key(userID))
	switch {
	case errors.Is(err, ErrNoRecord):
		// first visit, nothing stored yet
	case err != nil:
		log.Printf("cart: load failed for %s: %v", userID, err)
	default:
		items, decErr := decodeItems(data)
		if decErr != nil {
			log.Printf("cart: corrupt record for %s, resetting: %v", userID, decErr)
		} else {
			gc.items = items
		}
	}
	gc.hydrated = true
	return gc
}

// persist writes the guest's cart back to storage. It runs only after
// hydration, i.e. only from mutation paths. Storage failures are logged
// and swallowed so a flaky backend never blocks the in-memory cart.
func (s *Store) persist(ctx context.Context, userID string, gc *guestCart) {
	data, err := encodeItems(gc.items)
	if err != nil {
		log.Printf("cart: encode failed for %s: %v", userID, err)
		return
	}
	if err := s.storage.Save(ctx, Key(userID), data); err != nil {
		log.Printf("cart: save failed for %s: %v", userID, err)
	}
}

// Items returns a copy of the guest's cart in insertion order.
func (s *Store) Items(ctx context.Context, userID string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	gc := s.hydrate(ctx, userID)
	out := make([]model.CartItem, len(gc.items))
	copy(out, gc.items)
	return out
}

// CartDates returns the stay window shared by the cart, taken from the
// first item. The second return is false for an empty cart. Browse views
// use this to lock their date pickers once a cart is non-empty.
func (s *Store) CartDates(ctx context.Context, userID string) (model.StayWindow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gc := s.hydrate(ctx, userID)
	if len(gc.items) == 0 {
		return model.StayWindow{}, false
	}
	return gc.items[0].StayWindow, true
}

// IsRoomInCart reports whether the room id is already present.
func (s *Store) IsRoomInCart(ctx context.Context, userID string, roomID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate(ctx, userID).contains(roomID)
}

func (gc *guestCart) contains(roomID int) bool {
	for _, it := range gc.items {
		if it.ID == roomID {
			return true
		}
	}
	return false
}

// AddToCart appends an item if it passes the cart invariants: the room must
// not already be present, and when the cart is non-empty the item's stay
// window must match the cart's at day granularity. Dates are normalized to
// calendar days before storing. All rejection paths come back through the
// result, never as an error.
func (s *Store) AddToCart(ctx context.Context, userID string, item model.CartItem) AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	gc := s.hydrate(ctx, userID)

	if gc.contains(item.ID) {
		return AddResult{Success: false, Message: msgAlreadyInCart}
	}
	if len(gc.items) > 0 && !gc.items[0].SameDays(item.StayWindow) {
		return AddResult{Success: false, Message: msgDatesMismatch}
	}

	item.CheckIn = toDay(item.CheckIn)
	item.CheckOut = toDay(item.CheckOut)
	gc.items = append(gc.items, item)
	s.persist(ctx, userID, gc)
	return AddResult{Success: true, Message: msgAdded}
}

// RemoveFromCart drops the item at the given positional index in the
// current ordering. An out-of-range index leaves the cart unchanged.
func (s *Store) RemoveFromCart(ctx context.Context, userID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gc := s.hydrate(ctx, userID)
	if index < 0 || index >= len(gc.items) {
		return
	}
	gc.items = append(gc.items[:index], gc.items[index+1:]...)
	s.persist(ctx, userID, gc)
}

// ClearCart empties the guest's cart.
func (s *Store) ClearCart(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gc := s.hydrate(ctx, userID)
	gc.items = nil
	s.persist(ctx, userID, gc)
}

// TotalPrice sums price × nights over the current items. The computation is
// per-item even though all items share one window today, so a future
// relaxation of the single-trip rule would not change this code. The value
// is computed fresh on every call.
func (s *Store) TotalPrice(ctx context.Context, userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	gc := s.hydrate(ctx, userID)
	total := 0.0
	for _, it := range gc.items {
		total += it.Total()
	}
	return total
}

// toDay truncates an instant to its UTC calendar day. Day granularity is
// all the booking flow ever compares on.
func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
